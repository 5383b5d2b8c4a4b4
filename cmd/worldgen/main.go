package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/cloudwego/eino/components/model"
	"github.com/tbxark/worldgen"
	"github.com/tbxark/worldgen/config"
	"github.com/tbxark/worldgen/npc"
)

type cliFlags struct {
	config   string
	kind     string
	desc     string
	location string
	in       string
	refine   string
	format   string
	schema   bool
	sanitize bool
	talk     bool
}

func main() {
	var fl cliFlags
	flag.StringVar(&fl.config, "config", "", "path to config file")
	flag.StringVar(&fl.kind, "kind", "character", "record kind: "+strings.Join(kindNames(), "|"))
	flag.StringVar(&fl.desc, "desc", "", "what to generate")
	flag.StringVar(&fl.location, "location", "", "location JSON file an encounter takes place in")
	flag.StringVar(&fl.in, "in", "", "record JSON file to refine")
	flag.StringVar(&fl.refine, "refine", "", "instruction applied to the record given by -in")
	flag.StringVar(&fl.format, "format", "json", "output format: json|yaml")
	flag.BoolVar(&fl.schema, "schema", false, "print the JSON schema of -kind and exit")
	flag.BoolVar(&fl.sanitize, "sanitize", false, "strip markup from generated text")
	flag.BoolVar(&fl.talk, "talk", false, "chat with an NPC instead of generating a record")
	flag.Parse()

	if err := run(context.Background(), fl, os.Stdin, os.Stdout); err != nil {
		log.Fatalf("worldgen: %v", err)
	}
}

func run(ctx context.Context, fl cliFlags, stdin io.Reader, stdout io.Writer) error {
	k, ok := lookupKind(fl.kind)
	if !ok {
		return fmt.Errorf("unknown kind %q", fl.kind)
	}
	if fl.schema {
		s, err := k.jsonSchema()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, s)
		return err
	}

	conf, err := config.Load(fl.config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	level, _ := conf.Level()
	slog.SetLogLoggerLevel(level)
	slog.Debug("Loaded config", "config", conf.String())

	m, err := newModels(ctx, conf)
	if err != nil {
		return err
	}

	if fl.talk {
		if m.chat == nil {
			return errors.New("-talk needs the openai provider")
		}
		return talk(ctx, m.chat, stdin, stdout)
	}

	var opts []worldgen.Option
	if fl.sanitize {
		opts = append(opts, worldgen.WithSanitizer(worldgen.StrictSanitizer()))
	}
	factory, err := worldgen.NewFactory(m.completer, opts...)
	if err != nil {
		return err
	}

	var out any
	if fl.refine != "" {
		if fl.in == "" {
			return errors.New("-refine needs -in")
		}
		current, rErr := os.ReadFile(fl.in)
		if rErr != nil {
			return rErr
		}
		out, err = k.refine(ctx, factory, string(current), fl.refine)
	} else {
		desc := strings.TrimSpace(fl.desc)
		if desc == "" {
			if err := survey.AskOne(&survey.Input{
				Message: fmt.Sprintf("Describe the %s:", k.schema.Name()),
			}, &desc, survey.WithValidator(survey.Required)); err != nil {
				return err
			}
		}
		out, err = k.generate(ctx, factory, request{description: desc, locationFile: fl.location})
	}
	if err != nil {
		return err
	}
	return writeRecord(stdout, out, fl.format)
}

func talk(ctx context.Context, chatModel model.BaseChatModel, stdin io.Reader, stdout io.Writer) error {
	conv, err := npc.NewConversation(chatModel)
	if err != nil {
		return err
	}
	reader := bufio.NewReader(stdin)
	for {
		fmt.Fprint(stdout, "You: ")
		input, rErr := reader.ReadString('\n')
		input = strings.TrimSpace(input)
		if input != "" {
			reply, err := conv.Say(ctx, input)
			if err != nil {
				return err
			}
			fmt.Fprintf(stdout, "NPC: %s\n", reply)
		}
		if rErr != nil {
			if errors.Is(rErr, io.EOF) {
				return nil
			}
			return rErr
		}
	}
}
