package grid

// Demo puzzle from the README and its unique solution.
const (
	demoPuzzle   = "xxxxxxx9xx9x7xx21xxx4x9xxxxx1xxx8xxx7xx42xxx5xx8xxxx748x1xxxx4xxxxxxxxxxxx9613xxx"
	demoSolution = "157832496396745218284196753415378962763429185928561374831257649672984531549613827"
)
