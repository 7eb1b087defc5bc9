// meta/meta.go
package meta

// GAMES defines the number of games played per run.
const GAMES = 10000

// WORKERS defines the number of goroutines playing games.
const WORKERS = 1

// STRATEGY defines the strategy evaluated when none is given.
const STRATEGY = "analytical"

// FLEET defines the fleet preset placed on every board.
const FLEET = "polish"

// OUTPUT_DIR defines where run results are written.
const OUTPUT_DIR = "experiments/results"
