package cli

import (
	"context"
	"io"
	"os"
	"os/exec"

	"golang.org/x/term"

	"github.com/kmj8843/mdrowser/internal/present"
	"github.com/kmj8843/mdrowser/pkg/api"
)

const defaultPager = "less -FRSX"

func renderPage(ctx context.Context, out, errOut io.Writer, page api.Page, opts present.Options) error {
	return withPager(ctx, out, errOut, func(w io.Writer) error {
		return present.RenderPage(w, page, opts)
	})
}

// withPager pipes output through $PAGER when writing to a terminal.
// The pager string may carry flags, so it runs via a shell.
func withPager(ctx context.Context, out, errOut io.Writer, write func(io.Writer) error) error {
	outFile, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(outFile.Fd())) {
		return write(out)
	}
	pager := os.Getenv("PAGER")
	if pager == "" {
		pager = defaultPager
	}
	cmd := exec.CommandContext(ctx, "sh", "-c", pager)
	cmd.Stdout = outFile
	if errFile, ok := errOut.(*os.File); ok {
		cmd.Stderr = errFile
	} else {
		cmd.Stderr = os.Stderr
	}
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return write(out)
	}
	if err := cmd.Start(); err != nil {
		return write(out)
	}
	writeErr := write(stdin)
	_ = stdin.Close()
	waitErr := cmd.Wait()
	if writeErr != nil {
		return writeErr
	}
	return waitErr
}
