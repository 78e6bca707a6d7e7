// Package errors provides exit-code errors and hints for depcheck commands.
//
// Commands return an ExitError when they need a specific process exit code;
// cmd.Execute maps any error to a code with GetExitCode.
//
// Error Checking:
//
//	if exitErr, ok := errors.IsExitError(err); ok {
//	    os.Exit(exitErr.Code)
//	}
//
// Exit Codes:
//
// Standard exit codes are defined for scripting integration:
//   - ExitSuccess (0): The command completed
//   - ExitFailure (2): A critical error occurred
//   - ExitConfigError (3): Configuration or input error
//   - ExitCanceled (130): The operator canceled the prompt
package errors
