package command

// Base prices for the operations the water and terrain commands charge.
// Values are the classic base costs; the command layer only needs them to be
// stable and distinct.
const (
	PriceClearGrass  Money = 40
	PriceClearRough  Money = 200
	PriceClearRocks  Money = 100
	PriceClearFields Money = 500
	PriceClearTrees  Money = 500
	PriceClearWater  Money = 1000
	PriceClearCanal  Money = 2000
	PriceBuildCanal  Money = 5000
	PriceBuildLock   Money = 7500
	PriceClearLock   Money = 2000
	PriceBuildDepot  Money = 1600
	PriceClearDepot  Money = 400
	PriceClearRail   Money = 450
)
