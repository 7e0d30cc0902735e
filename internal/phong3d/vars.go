package phong3d

var (
	Debug       = false // set to true for verbose debug output
	Progress    = true  // set to false to silence [RENDER] progress lines
	Workers     = 0     // parallel render workers, 0 means runtime.NumCPU()
	ForceFormat = ""    // when set, overrides the configured output format
)
