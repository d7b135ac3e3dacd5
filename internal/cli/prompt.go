package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// promptSecret reads a secret without echo when stdin is a terminal, or a
// single line from the command's input otherwise
func promptSecret(cmd *cobra.Command, prompt string) (string, error) {
	fmt.Fprint(cmd.ErrOrStderr(), prompt)

	var secret string
	stdinFd := int(os.Stdin.Fd())
	if cmd.InOrStdin() == os.Stdin && term.IsTerminal(stdinFd) {
		byteKey, err := term.ReadPassword(stdinFd)
		fmt.Fprintln(cmd.ErrOrStderr()) // New line after password input
		if err != nil {
			return "", fmt.Errorf("failed to read secret: %w", err)
		}
		secret = string(byteKey)
	} else {
		reader := bufio.NewReader(cmd.InOrStdin())
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return "", fmt.Errorf("failed to read secret: %w", err)
		}
		secret = line
	}

	secret = strings.TrimSpace(secret)
	if secret == "" {
		return "", fmt.Errorf("secret cannot be empty")
	}
	return secret, nil
}
