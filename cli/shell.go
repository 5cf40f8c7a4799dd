package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/spf13/cobra"
)

const shellPrompt = "payback> "

func newShellCommand(app appFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive session",
		Long: `Reads commands line by line and runs them against the same address book.
Type "help" for the list of commands and "exit" to leave.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, app)
		},
	}
}

// runShell は入力が尽きるか exit が入力されるまでコマンドを実行します。
// コマンドのエラーは表示して処理を続けます。
func runShell(cmd *cobra.Command, app appFunc) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	scanner := bufio.NewScanner(cmd.InOrStdin())

	for {
		fmt.Fprint(out, shellPrompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "exit", "quit":
			app().logger.Debug("shell closed")
			return nil
		}

		args, err := shellwords.Parse(line)
		if err != nil {
			printError(errOut, err)
			continue
		}

		sub := newLineCommand(app, out, errOut)
		sub.SetArgs(args)
		if err := sub.ExecuteContext(ctx); err != nil {
			printError(errOut, err)
		}
	}
}

// newLineCommand は1行分のコマンドツリーを生成します。
// フラグの値が行をまたいで残らないよう、行ごとに作り直します。
func newLineCommand(app appFunc, out, errOut io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "payback",
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	addCommands(cmd, app)
	return cmd
}

// printError はエラーをユーザー向けの形式で出力します。
func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}
