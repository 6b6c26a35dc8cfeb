package main

import (
	"bufio"
	"github.com/saylorsolutions/jasily/cli"
	"github.com/saylorsolutions/jasily/convert"
	"github.com/saylorsolutions/jasily/hashx"
	"github.com/saylorsolutions/jasily/structures/comparer"
	"os"
	"reflect"
	"slices"
	"strings"
	"time"
)

func newManager(opts ...cli.ManagerOption) *cli.Manager {
	m := cli.NewManager(opts...)
	m.Command("hash", hashFile, cli.Required("path"), cli.Optional("algorithms", "crc32,sha1")).
		Describe("Calculates hashes of a file in one pass.").
		ArgAlias("algorithms", "a").
		Sorted().
		MustBuild()
	m.Command("convert", convertValue, cli.Required("type"), cli.Required("value")).
		Describe("Converts a value to a type, and prints the result.").
		Sorted().
		MustBuild()
	m.Command("distinct", distinctLines, cli.Required("file"), cli.Optional("ignore-case", "false"), cli.Optional("limit", 0)).
		Describe("Prints the distinct lines of a file.").
		ArgAlias("file", "f").
		ArgAlias("ignore-case", "i").
		MustBuild()
	m.Command("help", func(s *cli.Session, _ cli.Values) error {
		s.Manager().PrintCommands()
		return nil
	}).Alias("usage").Describe("Prints this usage information.").MustBuild()
	return m
}

func hashFile(s *cli.Session, values cli.Values) error {
	path, _ := values.String("path")
	names, _ := values.String("algorithms")
	calc := hashx.NewCalculator()
	for _, name := range strings.Split(names, ",") {
		if len(strings.TrimSpace(name)) == 0 {
			continue
		}
		alg, err := hashx.AlgorithmByName(name)
		if err != nil {
			return cli.NewRunningError("%w", err)
		}
		calc.Register(alg)
	}
	if len(calc.Names()) == 0 {
		return cli.NewRunningError("no hash algorithms given")
	}
	if err := calc.CalculateFile(s.Context(), path); err != nil {
		return err
	}
	for _, name := range calc.Names() {
		result, err := calc.Result(name)
		if err != nil {
			return err
		}
		s.Printer().Printf("%-6s %s\n", name, result)
	}
	return nil
}

var convertTypes = map[string]reflect.Type{
	"bool":     reflect.TypeOf(false),
	"int":      reflect.TypeOf(0),
	"int64":    reflect.TypeOf(int64(0)),
	"uint":     reflect.TypeOf(uint(0)),
	"float":    reflect.TypeOf(0.0),
	"float32":  reflect.TypeOf(float32(0)),
	"string":   reflect.TypeOf(""),
	"duration": reflect.TypeOf(time.Duration(0)),
}

func convertValue(s *cli.Session, values cli.Values) error {
	typeName, _ := values.String("type")
	raw, _ := values.String("value")
	t, ok := convertTypes[strings.ToLower(typeName)]
	if !ok {
		names := make([]string, 0, len(convertTypes))
		for name := range convertTypes {
			names = append(names, name)
		}
		slices.Sort(names)
		return cli.NewRunningError("unknown type '%s', expected one of %s", typeName, strings.Join(names, ", "))
	}
	val, err := convert.To(t, raw)
	if err != nil {
		return cli.NewRunningError("%w", err)
	}
	s.Printer().Printf("%v (%T)\n", val, val)
	return nil
}

func distinctLines(s *cli.Session, values cli.Values) error {
	path, _ := values.String("file")
	ignoreCaseVal, _ := values.String("ignore-case")
	limit, _ := values.Int("limit")
	ignoreCase, err := convert.Bool(ignoreCaseVal)
	if err != nil {
		return cli.NewRunningError("arg ignore-case should be a boolean.")
	}
	eq := comparer.Default[string]()
	if ignoreCase {
		eq = comparer.IgnoreCase()
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	lines := comparer.NewSet(eq)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if err := s.Context().Err(); err != nil {
			return err
		}
		lines.Add(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	distinct := lines.Slice()
	if limit > 0 && limit < len(distinct) {
		distinct = distinct[:limit]
	}
	for _, line := range distinct {
		s.Printer().Println(line)
	}
	return nil
}
