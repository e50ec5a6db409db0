package kde

const (
	// DefaultGridSize is the mesh resolution used when Options.GridSize is 0.
	DefaultGridSize = 1 << 14

	// derived bounds pad the sample range by this fraction on each side,
	// so the density can decay to zero before the interval ends
	boundsPadFraction = 0.1

	// the fixed point root is searched on [diffusionTimeMin, diffusionTimeMax];
	// a well formed histogram puts the single admissible root inside it
	diffusionTimeMin = 0.0
	diffusionTimeMax = 0.1

	// Brent-Dekker settings for the diffusion time solve
	brentMaxIter = 100
	brentTol     = 1e-12
	brentEps     = 1e-15
)

func getDiffusionBracket() (float64, float64) {
	return diffusionTimeMin, diffusionTimeMax
}
