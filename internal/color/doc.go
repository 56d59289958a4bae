// Package color provides the terminal styles kc uses for its console output.
//
// Styles are lipgloss styles with adaptive colors, so they pick a light or a
// dark variant depending on the terminal background. lipgloss degrades them
// on terminals with fewer colors and drops them entirely when NO_COLOR is set
// or output is not a terminal.
//
// # Semantic Styles
//
//   - SuccessStyle: a combined kubeconfig was written
//   - WarningStyle: problems that did not stop the run
//   - ErrorStyle: the run failed
//   - MutedStyle: secondary details such as paths
//   - CurrentStyle: the current context in `kc contexts`
//
// # Usage Example
//
//	color.InitializeFromEnv()
//	fmt.Println(color.Success("Combined 3 clusters"))
//	fmt.Println(color.Error("No clusters found"))
//
// # Environment Variables
//
//   - NO_COLOR: Disable all color output
//   - KC_THEME: Force "dark" or "light" theme
package color
