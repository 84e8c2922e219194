package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/kr/pretty"

	"github.com/magical/curly"
)

var (
	defsFile = flag.String("defs", "", "file of {deffun {name param} body} forms")
	dumpAST  = flag.Bool("ast", false, "print the parsed tree instead of evaluating")
)

func main() {
	flag.Parse()

	defs := ""
	if *defsFile != "" {
		data, err := os.ReadFile(*defsFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defs = string(data)
	}

	if flag.NArg() == 0 {
		repl(defs)
		return
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *dumpAST {
		expr, err := curly.Parse(string(data))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		pretty.Println(expr)
		return
	}

	result, err := curly.Run(string(data), defs)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(result)
}

const prompt = "curly> "

// repl reads one expression or {deffun ...} form per line.
// Definitions accumulate in the session's table; errors never end the session.
func repl(defs string) {
	table, err := curly.ParseDefs(defs)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	l, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer l.Close()
	l.CaptureExitSignal()

	for {
		line, err := l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		} else if err != nil {
			fmt.Fprintln(os.Stderr, err)
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "{deffun") {
			newDefs, err := curly.ParseDefs(line)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				continue
			}
			table = append(table, newDefs...)
			for _, def := range newDefs {
				fmt.Println(curly.FormatDef(def))
			}
			continue
		}

		expr, err := curly.Parse(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		if *dumpAST {
			pretty.Println(expr)
			continue
		}
		result, err := curly.Eval(expr, curly.BuildTable(table), nil)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Println(result)
	}
}
