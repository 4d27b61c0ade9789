package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var errNoSelection = errors.New("no question selected")

// readLine returns one line without its terminator. A final line that is not
// newline-terminated is still returned; io.EOF is reported only when there is
// nothing left to read.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readText reads a possibly multi-line value: a line ending in a backslash
// continues on the next line.
func readText(reader *bufio.Reader) (string, error) {
	var builder strings.Builder
	for {
		line, err := readLine(reader)
		if err != nil {
			return "", err
		}
		if !strings.HasSuffix(line, `\`) {
			builder.WriteString(line)
			return builder.String(), nil
		}
		builder.WriteString(strings.TrimSuffix(line, `\`))
		builder.WriteString("\n")
	}
}

func promptYesNo(reader *bufio.Reader, out io.Writer, prompt string) (bool, error) {
	for {
		fmt.Fprint(out, prompt)
		line, err := readLine(reader)
		if err != nil {
			return false, err
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		switch answer {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			fmt.Fprintln(out, "Please answer yes or no.")
		}
	}
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  help")
	fmt.Fprintln(out, "  list")
	fmt.Fprintln(out, "  add")
	fmt.Fprintln(out, "  select <id>")
	fmt.Fprintln(out, "  edit          (edits the selected question)")
	fmt.Fprintln(out, "  delete        (deletes the selected question)")
	fmt.Fprintln(out, "  exit")
	fmt.Fprintln(out)
	fmt.Fprintln(out, `End a line with \ to continue content or answer on the next line.`)
}

func parseQuestionID(value string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid question id %q", value)
	}
	return id, nil
}

func warnNoSelection(out io.Writer, action string) {
	fmt.Fprintf(out, "warning: select a question to %s\n", action)
}
