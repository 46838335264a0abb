package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/roughdraw/pkg/cache"
)

// cacheCommand groups the subcommands that inspect the local artifact cache.
// Only the file cache is managed here; Redis entries expire on their own.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the rendered artifact cache",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "path",
			Short: "Print the cache directory",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				dir, err := cacheDir()
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), dir)
				return err
			},
		},
		&cobra.Command{
			Use:   "stats",
			Short: "Show how many artifacts are cached locally",
			Args:  cobra.NoArgs,
			RunE:  func(*cobra.Command, []string) error { return c.cacheStats() },
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Delete every locally cached artifact",
			Args:  cobra.NoArgs,
			RunE:  func(*cobra.Command, []string) error { return c.cacheClear() },
		},
	)
	return cmd
}

// localCache opens the file cache, or returns nil when nothing was ever
// written to it.
func localCache() (*cache.FileCache, error) {
	dir, err := cacheDir()
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, nil
	}
	return cache.NewFileCache(dir)
}

func (c *CLI) cacheStats() error {
	fc, err := localCache()
	if err != nil {
		return err
	}
	if fc == nil {
		printInfo("Cache is empty")
		return nil
	}
	n, size, err := fc.Usage()
	if err != nil {
		return err
	}
	printKeyValue("Directory", fc.Dir())
	printKeyValue("Artifacts", fmt.Sprint(n))
	printKeyValue("Size", formatBytes(size))
	if url := c.Config.Cache.RedisURL; url != "" {
		printKeyValue("Redis", url)
	}
	return nil
}

func (c *CLI) cacheClear() error {
	fc, err := localCache()
	if err != nil {
		return err
	}
	if fc == nil {
		printInfo("Cache is empty")
		return nil
	}
	n, size, err := fc.Usage()
	if err != nil {
		return err
	}
	if _, err := fc.Clear(); err != nil {
		return err
	}

	printSuccess("Cleared %d cached artifacts", n)
	printDetail("%s freed in %s", formatBytes(size), fc.Dir())
	if c.Config.Cache.RedisURL != "" {
		printWarning("Redis entries are kept until they expire (%s)", c.Config.Cache.TTL.Duration)
	}
	return nil
}

// formatBytes renders n with a binary unit, e.g. "1.5 KiB".
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
