package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"

	dtformat "github.com/goliatone/go-dtformat"
)

type cliConfig struct {
	locales    []string
	options    map[string]string
	presetPath string
	presetName string
	dataDir    string
	from       []int
	to         []int
	resolved   bool
	order      bool
	verbose    bool
}

type listFlag struct {
	items []string
}

func (f *listFlag) String() string {
	return strings.Join(f.items, ",")
}

func (f *listFlag) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f.items = append(f.items, part)
	}
	return nil
}

type optionFlag map[string]string

func (f optionFlag) String() string {
	keys := make([]string, 0, len(f))
	for key := range f {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+"="+f[key])
	}
	return strings.Join(parts, ",")
}

func (f optionFlag) Set(value string) error {
	key, val, ok := strings.Cut(value, "=")
	if !ok || strings.TrimSpace(key) == "" {
		return fmt.Errorf("option %q must be key=value", value)
	}
	f[strings.TrimSpace(key)] = strings.TrimSpace(val)
	return nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		reportError(err)
	}

	if err := run(cfg); err != nil {
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "dtformat: %v\n", err)
	os.Exit(1)
}

func parseFlags(args []string) (cliConfig, error) {
	var (
		cfg     cliConfig
		locales listFlag
		from    string
		to      string
	)
	options := optionFlag{}

	fs := flag.NewFlagSet("dtformat", flag.ContinueOnError)
	fs.Var(&locales, "locale", "candidate locale tag. Repeat flag to add more.")
	fs.Var(options, "opt", "format option as key=value, e.g. month=long. Repeat flag to add more.")
	fs.StringVar(&cfg.presetPath, "presets", "", "preset file (.json, .yaml, .yml or .toml)")
	fs.StringVar(&cfg.presetName, "preset", "", "preset name to use from -presets")
	fs.StringVar(&cfg.dataDir, "data", "", "directory of locale data overlays")
	fs.StringVar(&from, "date", "", "instant as year,month,day,hour,minute,second")
	fs.StringVar(&to, "to", "", "range end, same shape as -date")
	fs.BoolVar(&cfg.resolved, "resolved", false, "print resolved options")
	fs.BoolVar(&cfg.order, "order", false, "print the date field order of the first locale")
	fs.BoolVar(&cfg.verbose, "v", false, "log construction details to stderr")

	if err := fs.Parse(args); err != nil {
		return cliConfig{}, err
	}

	cfg.locales = locales.items
	cfg.options = options

	if cfg.presetName != "" && cfg.presetPath == "" {
		return cliConfig{}, errors.New("-preset requires -presets")
	}

	var err error
	if cfg.from, err = parseFields(from); err != nil {
		return cliConfig{}, fmt.Errorf("-date: %w", err)
	}
	if cfg.to, err = parseFields(to); err != nil {
		return cliConfig{}, fmt.Errorf("-to: %w", err)
	}
	return cfg, nil
}

func parseFields(value string) ([]int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	parts := strings.Split(value, ",")
	fields := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid field %q", part)
		}
		fields = append(fields, n)
	}
	return fields, nil
}

func run(cfg cliConfig) error {
	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	opts := []dtformat.Option{
		dtformat.WithLogger(logger),
		dtformat.WithDataDirectory(cfg.dataDir),
	}

	locales, configs, err := resolveConfig(cfg)
	if err != nil {
		return err
	}

	formatter, err := dtformat.New(locales, configs, opts...)
	if err != nil {
		return err
	}

	fmt.Printf("locale:  %s\n", formatter.Locale())
	fmt.Printf("pattern: %s\n", formatter.Pattern())

	if cfg.order {
		order, err := dtformat.DateOrder(formatter.Locale())
		if err != nil {
			return err
		}
		fmt.Printf("order:   %s\n", order)
	}

	if cfg.from != nil {
		if cfg.to != nil {
			out, err := formatter.FormatRange(cfg.from, cfg.to)
			if err != nil {
				return err
			}
			fmt.Println(out)
		} else {
			fmt.Println(formatter.Format(cfg.from))
		}
	}

	if cfg.resolved {
		resolved := formatter.ResolvedOptions()
		keys := make([]string, 0, len(resolved))
		for key := range resolved {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fmt.Printf("%s=%s\n", key, resolved[key])
		}
	}
	return nil
}

// resolveConfig merges the named preset with explicit flags; flags win.
func resolveConfig(cfg cliConfig) ([]string, map[string]string, error) {
	locales := cfg.locales
	configs := make(map[string]string)

	if cfg.presetPath != "" {
		presets, err := dtformat.LoadPresets(cfg.presetPath)
		if err != nil {
			return nil, nil, err
		}
		preset, ok := presets.Lookup(cfg.presetName)
		if !ok {
			return nil, nil, fmt.Errorf("preset %q not found", cfg.presetName)
		}
		if len(locales) == 0 {
			locales = preset.Locales
		}
		for key, value := range preset.Options.Map() {
			configs[key] = value
		}
	}

	for key, value := range cfg.options {
		configs[key] = value
	}
	return locales, configs, nil
}
