package main

import (
	"fmt"
	"io"
	"strings"
)

var bannerLines = []string{
	"       ____ ___  ____  ______________  ____",
	"      / __ `__ \\/ __ \\/ ___/ ___/ __ \\/ __ \\",
	"     / / / / / / /_/ / /  (__  ) /_/ / / / /",
	"    /_/ /_/ /_/\\____/_/  /____/\\____/_/ /_/",
}

func printBanner(w io.Writer) {
	fmt.Fprintf(w, "\n%s\n\n", strings.Join(bannerLines, "\n"))
}
