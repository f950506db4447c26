// Package dropsim simulates item drops under Magic Find, Looting and the
// RNG meter.
//
// A run draws one uniform value per roll from a seeded RandomSource. The
// draw succeeds when it falls below the effective chance: the base chance,
// raised by the RNG meter, then by Magic Find, then by Looting. For every
// roll the simulator also finds the smallest Magic Find that would have won
// that exact draw, and Summarize turns the run into mean/median/mode/range
// statistics.
package dropsim
