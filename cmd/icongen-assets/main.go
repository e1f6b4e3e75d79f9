package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/spf13/cobra"

	"github.com/luli-reader/icongen/pkg"
	"github.com/luli-reader/icongen/pkg/iconset"
	"github.com/luli-reader/icongen/pkg/iconset/catalog"
)

const version = "0.3.0"

var (
	projectRoot  string
	glyphName    string
	platformsCSV string
	sourcePath   string
	sourceDark   string
	iconColor    string
	bgColor      string
	darkColor    string
	darkBGColor  string
	appearances  bool
	verifyTree   bool
	dryRun       bool
	exportPath   string
	windowsExe   string
	logLevel     string
	rootCmd      *cobra.Command
	versionFlag  bool
)

func getBuildTimestamp() string {
	// Try to get vcs.time from build info
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.time" {
				if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
					return t.UTC().Format(time.RFC3339)
				}
			}
		}
	}
	// Fallback to binary modification time
	if exePath, err := os.Executable(); err == nil {
		if stat, err := os.Stat(exePath); err == nil {
			return stat.ModTime().UTC().Format(time.RFC3339)
		}
	}
	return time.Now().UTC().Format(time.RFC3339)
}

func init() {
	rootCmd = &cobra.Command{
		Use:   "icongen-assets",
		Short: "Generate Luli Reader app icon assets",
		Long:  `Generate Luli Reader app icon assets`,
		Run:   generateAssets,
	}

	rootCmd.Flags().StringVarP(&projectRoot, "project-root", "p", "", "App project root (defaults to ICONGEN_PROJECT_ROOT, then CWD)")
	rootCmd.Flags().StringVarP(&glyphName, "glyph", "g", "", "Icon glyph to render (feed, classic, book)")
	rootCmd.Flags().StringVar(&platformsCSV, "platforms", "", "Comma-separated platforms to generate (android, ios, windows; defaults to all)")
	rootCmd.Flags().StringVar(&sourcePath, "source", "", "Master image to resize into every slot instead of procedural rendering")
	rootCmd.Flags().StringVar(&sourceDark, "source-dark", "", "Master image for dark scheme slots (defaults to --source)")
	rootCmd.Flags().StringVar(&iconColor, "color", "", "Icon color override for the light scheme")
	rootCmd.Flags().StringVar(&bgColor, "bg-color", "", "Background color override for the light scheme")
	rootCmd.Flags().StringVar(&darkColor, "dark-color", "", "Icon color override for the dark scheme")
	rootCmd.Flags().StringVar(&darkBGColor, "dark-bg-color", "", "Background color override for the dark scheme")
	rootCmd.Flags().BoolVar(&appearances, "appearances", false, "Rewrite Contents.json with explicit dark appearance entries")
	rootCmd.Flags().BoolVar(&verifyTree, "verify", false, "Verify the generated tree against the lock file instead of rendering")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Log what would be written without touching the tree")
	rootCmd.Flags().StringVar(&exportPath, "export", "", "Export the generated assets as an archive (.tar, .tar.gz, .tgz, .tar.bz2, .tbz2)")
	rootCmd.Flags().StringVar(&windowsExe, "windows-exe", "", "Windows runner executable to embed the generated icon into")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.Flags().BoolVarP(&versionFlag, "version", "V", false, "Show version information")
}

func main() {
	// Handle --version or -V before cobra parses other flags
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-V") {
		fmt.Printf("icongen-assets %s\n", version)
		fmt.Printf("Built: %s\n", getBuildTimestamp())
		os.Exit(0)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func generateAssets(cmd *cobra.Command, args []string) {
	if versionFlag {
		fmt.Printf("icongen-assets %s\n", version)
		fmt.Printf("Built: %s\n", getBuildTimestamp())
		return
	}

	if verifyTree {
		pkg.VerifyAssetsWithLogLevel(projectRoot, logLevel)
		return
	}

	platforms, err := catalog.ParsePlatforms(platformsCSV)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	pkg.GenerateAssetsWithLogLevel(iconset.GenerateOptions{
		ProjectRoot: projectRoot,
		Glyph:       glyphName,
		Platforms:   platforms,
		Source:      sourcePath,
		SourceDark:  sourceDark,
		Color:       iconColor,
		BGColor:     bgColor,
		DarkColor:   darkColor,
		DarkBGColor: darkBGColor,
		Appearances: appearances,
		DryRun:      dryRun,
		Export:      exportPath,
		WindowsExe:  windowsExe,
	}, logLevel)
}
