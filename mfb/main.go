// Command mfb is a personal finance manager.
//
// Run without a subcommand it starts the interactive menu.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path"

	"github.com/etnz/budget/cmd"
	"github.com/etnz/budget/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	name := path.Base(os.Args[0])
	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	// Shell completion, install it with COMP_INSTALL=1 mfb.
	completion(commander).Complete(name)

	flag.Parse()
	if flag.NArg() == 0 {
		flag.CommandLine.Parse([]string{"menu"})
	}

	if sub := flag.Arg(0); !registered(commander, sub) {
		if found, code := cmd.RunExtension(sub, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := commander.Execute(ctx)
	stop()
	os.Exit(int(code))
}

func registered(commander *subcommands.Commander, name string) bool {
	found := false
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		if c.Name() == name {
			found = true
		}
	})
	return found
}

// completion describes the command line for shell completion.
func completion(commander *subcommands.Commander) *complete.Command {
	var names []string
	subs := make(map[string]*complete.Command)
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		names = append(names, c.Name())
		subs[c.Name()] = &complete.Command{}
	})
	subs["help"].Args = predict.Set(names)
	if topics, err := docs.GetAllTopics(); err == nil {
		subs["topic"].Args = predict.Set(append(topics, docs.Readme))
	}

	flags := make(map[string]complete.Predictor)
	flag.VisitAll(func(f *flag.Flag) { flags[f.Name] = predict.Something })
	flags["style"] = predict.Set{"auto", "dark", "light", "notty", "raw"}
	flags["log-level"] = predict.Set{"debug", "info", "warn", "error"}

	return &complete.Command{Sub: subs, Flags: flags}
}
