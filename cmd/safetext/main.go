// Command safetext sanitizes untrusted input read from stdin or a file.
//
//	echo '<b>hi</b>' | safetext -op escape
//	safetext -op url < links.txt
//	safetext -op input -in payload.json
//	echo 'x<script>y</script>' | safetext -op strip,escape
//
// The default operation and logging are configured through SAFETEXT_*
// environment variables or a .env file in the working directory.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}
