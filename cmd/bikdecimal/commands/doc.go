// Package commands defines the bikdecimal CLI.
//
// Commands
//
//   - eval     Evaluate infix or prefix expressions
//   - round    Round a value to a scale
//   - sum      Sum values from arguments or standard input
//   - compare  Compare two values
//   - demo     Print a tour of the decimal API
//
// # Configuration
//
// Settings come from persistent flags only. The --scale and --mode flags
// control division in eval and rounding in round. A negative scale requests
// exact division, which fails for quotients such as 1/3.
//
// The root command builds a zap logger from --log-level and --log-format
// before any subcommand runs. The BIKDECIMAL_LOG_LEVEL environment variable
// supplies the level when the flag is not given.
package commands
