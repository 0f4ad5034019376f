package colors

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// ANSI color codes
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"

	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
	White  = "\033[37m"
	Gray   = "\033[90m"

	BrightRed     = "\033[91m"
	BrightGreen   = "\033[92m"
	BrightYellow  = "\033[93m"
	BrightBlue    = "\033[94m"
	BrightMagenta = "\033[95m"
	BrightCyan    = "\033[96m"
)

// Output is where all messages are written
var Output io.Writer = os.Stdout

func printLine(icon, iconColor, textColor, format string, args ...interface{}) {
	timestamp := time.Now().Format("15:04:05")
	fmt.Fprintf(Output, "%s[%s]%s %s%s%s %s%s%s\n",
		Gray, timestamp, Reset,
		iconColor, icon, Reset,
		textColor, fmt.Sprintf(format, args...), Reset)
}

// PrintInfo prints informational messages with cyan color
func PrintInfo(format string, args ...interface{}) {
	printLine("ℹ ", Cyan, BrightCyan, format, args...)
}

// PrintSuccess prints success messages with green color
func PrintSuccess(format string, args ...interface{}) {
	printLine("✅", Green, BrightGreen, format, args...)
}

// PrintWarning prints warning messages with yellow color
func PrintWarning(format string, args ...interface{}) {
	printLine("⚠️ ", Yellow, BrightYellow, format, args...)
}

// PrintError prints error messages with red color
func PrintError(format string, args ...interface{}) {
	printLine("❌", Red, BrightRed, format, args...)
}

// PrintServer prints server-related messages
func PrintServer(icon, format string, args ...interface{}) {
	printLine(icon, BrightBlue, White, format, args...)
}

// PrintHeader prints header messages with bold styling
func PrintHeader(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	border := strings.Repeat("═", len([]rune(message))+2)
	fmt.Fprintf(Output, "\n%s%s╔%s╗%s\n", BrightBlue, Bold, border, Reset)
	fmt.Fprintf(Output, "%s%s║ %s ║%s\n", BrightBlue, Bold, message, Reset)
	fmt.Fprintf(Output, "%s%s╚%s╝%s\n\n", BrightBlue, Bold, border, Reset)
}

// PrintSubHeader prints sub-header messages
func PrintSubHeader(format string, args ...interface{}) {
	fmt.Fprintf(Output, "%s%s▶ %s%s\n", BrightMagenta, Bold, fmt.Sprintf(format, args...), Reset)
}

// PrintBanner prints the application banner
func PrintBanner() {
	banner := `
%s%s
 __     __            _   __        _____
 \ \   / /__ _ __ ___(_) /_/  _ __ |___ /
  \ \ / / _ \ '__/ __| |/ _ \| '_ \  |_ \
   \ V /  __/ |  \__ \ | (_) | | | |___) |
    \_/ \___|_|  |___/_|\___/|_| |_|____/
%s
      %s🛡️  SCA · SAST · DAST approved release%s
%s`
	fmt.Fprintf(Output, banner, BrightCyan, Bold, Reset, BrightYellow, Reset, Reset)
}

// PrintEndpoint prints route information
func PrintEndpoint(method, path, description string) {
	var methodColor string
	switch method {
	case "GET":
		methodColor = BrightGreen
	case "POST":
		methodColor = BrightBlue
	case "PUT":
		methodColor = BrightYellow
	case "DELETE":
		methodColor = BrightRed
	default:
		methodColor = White
	}

	fmt.Fprintf(Output, "  %s%-6s%s %s%-30s%s %s%s%s\n",
		methodColor, method, Reset,
		Cyan, path, Reset,
		Gray, description, Reset)
}

// PrintShutdown prints shutdown message
func PrintShutdown() {
	fmt.Fprintf(Output, "\n%s%s🛑 Shutdown signal received, stopping server...%s\n\n", BrightRed, Bold, Reset)
}
