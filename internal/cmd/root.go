package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/enumbind/enumbind/internal/gen"
	"github.com/enumbind/enumbind/internal/resolve"
	"github.com/enumbind/enumbind/internal/schema"
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "enumbind [schema]",
	Short: "Generate an enum with numeric conversions from a schema",
	Long: `Generate an enum with numeric conversions from a schema.

enumbind is designed to be called by go generate. It reads a YAML enum
schema and emits the enum type, a fallible conversion from the raw numeric
representation, and a total conversion back to it. See
https://pkg.go.dev/github.com/enumbind/enumbind for usage examples.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		schemaFileName, ok := resolveParameterValue(cmd.Flag("input"), "")
		if !ok && len(args) > 0 {
			schemaFileName, ok = args[0], true
		}
		if !ok {
			return errors.New("failed to determine schema file")
		}

		s, err := schema.Load(schemaFileName)
		if err != nil {
			return err
		}

		pkgName, ok := resolveParameterValue(cmd.Flag("pkg"), "")
		if !ok {
			pkgName = s.Package
		}
		if pkgName == "" {
			pkgName, _ = os.LookupEnv("GOPACKAGE")
		}
		if pkgName == "" {
			return errors.New("failed to determine package name")
		}

		dir, ok := resolveParameterValue(cmd.Flag("dir"), "")
		if !ok {
			dir = filepath.Dir(schemaFileName)
		}

		var consts gen.ConstantSource
		if s.Enum.HasRefs() {
			r, err := resolve.Load(dir, pkgName)
			if err != nil {
				return fmt.Errorf("failed to resolve constants: %w", err)
			}
			consts = r
		}

		f, err := gen.File(s, pkgName, consts)
		if err != nil {
			return err
		}

		outputFileName, ok := resolveParameterValue(cmd.Flag("output"), "")
		if !ok {
			outputFileName = fmt.Sprintf("%s_enum.go", unexportedName(s.Enum.Name))
		}

		out, cleanup, err := openOutputFile(outputFileName)
		if err != nil {
			return err
		}
		defer cleanup()

		return f.Render(out)
	},
	Example: "enumbind --input kind.yaml --output kind_enum.go --pkg example",
}

func init() {
	fs := rootCmd.Flags()
	fs.StringVarP(&flagInput, "input", "i", "", "schema file to read. May also be passed as the first argument")
	fs.StringVarP(&flagOutput, "output", "o", "", "output file to create. If not specified, output defaults to the value of <type>_enum.go. As special cases, you can specify <STDOUT> or <STDERR> to output to standard output or standard error")
	fs.StringVarP(&flagPkg, "pkg", "p", "", "package name for the generated file. If not specified, pkg defaults to the schema's package field, then to the value of $GOPACKAGE which is set by go generate")
	fs.StringVarP(&flagDir, "dir", "d", "", "directory of the package that defines constants referenced by member values. If not specified, dir defaults to the schema file's directory")
}

var (
	flagInput  string
	flagOutput string
	flagPkg    string
	flagDir    string
)

// resolveParameterValue returns the parameter value from f if it was specified
// by the user. Otherwise, if env is not empty, it looks up the value from the
// environment variable named env.
func resolveParameterValue(f *pflag.Flag, env string) (string, bool) {
	if f.Changed {
		return f.Value.String(), true
	}

	if env != "" {
		return os.LookupEnv(env)
	}

	return f.DefValue, false
}

// openOutputFile opens/creates the file to write the output to.
// The returned func is the function to use to "close" the file.
func openOutputFile(name string) (*os.File, func(), error) {
	switch name {
	case "<STDOUT>":
		return os.Stdout, func() { _ = os.Stdout.Sync() }, nil
	case "<STDERR>":
		return os.Stderr, func() { _ = os.Stderr.Sync() }, nil
	default:
		ret, err := os.Create(name)
		if err != nil {
			return nil, nil, err
		}
		return ret, func() { _ = ret.Close() }, nil
	}
}

// unexportedName returns s with the first character replaced
// with its lower case version if it is upper case.
func unexportedName(s string) string {
	start, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}

	start = unicode.ToLower(start)
	return string(start) + s[size:]
}
