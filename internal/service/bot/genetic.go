package bot

import (
	"math"
	"math/rand"
	"sort"

	"github.com/iamasit07/connect4-ai/internal/domain"
)

// GeneticOptions sizes the genetic search. Zero fields take the defaults.
type GeneticOptions struct {
	PopulationSize int
	Generations    int
	EliteFraction  float64
	MutationRate   float64
}

const (
	DefaultPopulationSize = 20
	DefaultGenerations    = 10
	DefaultEliteFraction  = 0.2
	DefaultMutationRate   = 0.1
)

// unfit is the fitness of an individual whose column cannot be played.
const unfit = math.MinInt

// Genetic evolves a population of single-column guesses against the unchanged
// root board. It never looks past one ply; crossover is the integer average
// of two parent columns.
type Genetic struct {
	opts GeneticOptions
	rng  *rand.Rand
}

// NewGenetic uses rng for every random draw, so a seeded source makes the
// choice reproducible. A nil rng is seeded with 1.
func NewGenetic(opts GeneticOptions, rng *rand.Rand) *Genetic {
	if opts.PopulationSize < 2 {
		opts.PopulationSize = DefaultPopulationSize
	}
	if opts.Generations <= 0 {
		opts.Generations = DefaultGenerations
	}
	if opts.EliteFraction <= 0 || opts.EliteFraction > 1 {
		opts.EliteFraction = DefaultEliteFraction
	}
	if opts.MutationRate < 0 || opts.MutationRate > 1 {
		opts.MutationRate = DefaultMutationRate
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Genetic{opts: opts, rng: rng}
}

func (g *Genetic) Name() string { return StrategyGenetic }

// Options reports the effective settings after defaults were applied.
func (g *Genetic) Options() GeneticOptions { return g.opts }

type individual struct {
	column  int
	fitness int
}

func (g *Genetic) ChooseMove(board domain.Board, side domain.PlayerID) (int, error) {
	fallback, err := firstLegal(board)
	if err != nil {
		return -1, err
	}

	population := make([]int, g.opts.PopulationSize)
	for i := range population {
		population[i] = g.rng.Intn(domain.Columns)
	}

	for gen := 0; gen < g.opts.Generations; gen++ {
		ranked := rank(board, side, population)
		parents := g.selectParents(ranked)
		population = g.breed(parents)
	}

	best := rank(board, side, population)[0]
	if best.fitness == unfit {
		return fallback, nil
	}
	return best.column, nil
}

// rank scores every column and stable-sorts by descending fitness, so among
// equals the earlier individual stays first.
func rank(board domain.Board, side domain.PlayerID, population []int) []individual {
	ranked := make([]individual, len(population))
	for i, col := range population {
		ranked[i] = individual{column: col, fitness: fitness(board, side, col)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].fitness > ranked[j].fitness
	})
	return ranked
}

func fitness(board domain.Board, side domain.PlayerID, column int) int {
	next, err := domain.Drop(board, column, side)
	if err != nil {
		return unfit
	}
	return Evaluate(next, side)
}

// selectParents keeps the elite slice and fills the rest of the pool by
// roulette over the ranked population.
func (g *Genetic) selectParents(ranked []individual) []int {
	n := len(ranked)
	elite := int(math.Ceil(g.opts.EliteFraction * float64(n)))
	elite = min(max(elite, 1), n)

	parents := make([]int, 0, n)
	for i := 0; i < elite; i++ {
		parents = append(parents, ranked[i].column)
	}

	weights, total := rouletteWeights(ranked)
	for len(parents) < n {
		parents = append(parents, ranked[g.spin(weights, total)].column)
	}
	return parents
}

// rouletteWeights shifts fitness so the weakest legal individual still has
// weight 1; unplayable columns get 0.
func rouletteWeights(ranked []individual) ([]int, int) {
	floor := math.MaxInt
	for _, ind := range ranked {
		if ind.fitness != unfit && ind.fitness < floor {
			floor = ind.fitness
		}
	}

	weights := make([]int, len(ranked))
	total := 0
	for i, ind := range ranked {
		if ind.fitness == unfit {
			continue
		}
		weights[i] = ind.fitness - floor + 1
		total += weights[i]
	}
	return weights, total
}

// spin draws an index proportionally to weights, uniformly when every
// weight is zero.
func (g *Genetic) spin(weights []int, total int) int {
	if total == 0 {
		return g.rng.Intn(len(weights))
	}
	pick := g.rng.Intn(total)
	for i, w := range weights {
		if pick < w {
			return i
		}
		pick -= w
	}
	return len(weights) - 1
}

// breed pairs each parent with the next one (wrapping around), averages
// their columns and mutates the child.
func (g *Genetic) breed(parents []int) []int {
	n := len(parents)
	children := make([]int, n)
	for i := 0; i < n; i++ {
		child := crossover(parents[i], parents[(i+1)%n])
		if g.rng.Float64() < g.opts.MutationRate {
			child = g.rng.Intn(domain.Columns)
		}
		children[i] = child
	}
	return children
}

func crossover(a, b int) int {
	return (a + b) / 2
}
