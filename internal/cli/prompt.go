package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

func promptYesNo(message string) bool {
	return promptYesNoIO(os.Stdin, os.Stdout, message)
}

// promptYesNoIO asks a yes/no question; anything but y/yes counts as no.
func promptYesNoIO(in io.Reader, out io.Writer, message string) bool {
	if out != nil {
		fmt.Fprint(out, message)
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	line = strings.TrimSpace(strings.ToLower(line))
	return line == "y" || line == "yes"
}
