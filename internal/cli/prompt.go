package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

func confirm(in io.Reader, out io.Writer, question string) (bool, error) {
	fmt.Fprint(out, question)

	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read confirmation: %w", err)
	}
	fmt.Fprintln(out)
	return strings.EqualFold(strings.TrimSpace(answer), "yes"), nil
}
