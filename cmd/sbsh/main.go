package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/reusee/dscope"
	"github.com/ssokolow/snakebyte/cmds"
	"github.com/ssokolow/snakebyte/configs"
	"github.com/ssokolow/snakebyte/debugs"
	"github.com/ssokolow/snakebyte/lexers"
	"github.com/ssokolow/snakebyte/logs"
	"github.com/ssokolow/snakebyte/modes"
	"github.com/ssokolow/snakebyte/queues"
	"github.com/ssokolow/snakebyte/vars"
)

var (
	dialectFlag = cmds.Var[string]("-dialect")
	nickFlag    = cmds.Var[string]("-nick")
	debugFlag   = cmds.Switch("-debug")
)

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	dscope.New(
		new(Module),
		modes.ForProduction(),
	).Call(func(
		logger logs.Logger,
		newSpan logs.NewSpan,
		loader configs.Loader,
		tap debugs.Tap,
	) {

		dialectName := vars.FirstNonZero(
			*dialectFlag,
			configs.First[string](loader, "dialect"),
			"posix",
		)
		lexer, ok := lexers.ByName(dialectName)
		if !ok {
			fmt.Fprintf(os.Stderr, "unknown dialect: %s (have %v)\n",
				dialectName, lexers.Names())
			os.Exit(1)
		}

		nick := vars.FirstNonZero(
			*nickFlag,
			configs.First[string](loader, "nick"),
			"console",
		)

		logger.InfoContext(ctx, "reading lines",
			"dialect", lexer.Name(),
			"nick", nick,
		)

		queue := queues.New[string, string](logger)

		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lineCtx, _ := newSpan(ctx, "")
			line := scanner.Text()

			tokens, err := lexer.Tokenize(line)
			if err != nil {
				// malformed line: report and drop, the session goes on
				logger.ErrorContext(lineCtx, "tokenize",
					"error", logs.WrapSpan(lineCtx, err),
				)
				continue
			}

			for _, token := range tokens {
				queue.Push(nick, token)
			}
			for {
				lane, token, ok := queue.Pop()
				if !ok {
					break
				}
				fmt.Printf("%s\t%s\n", lane, token)
			}
		}
		ce(scanner.Err())

		if *debugFlag {
			tap(ctx, "session state", map[string]any{
				"lanes":    queue.Dump(),
				"dialects": lexers.Names(),
			})
		}
	})
}

func ce(err error) {
	if err != nil {
		panic(err)
	}
}
