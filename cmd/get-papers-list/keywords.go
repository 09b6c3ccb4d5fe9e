package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/get-papers-list/internal/extract"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "List the affiliation keywords that mark an author as non-academic",
	Long: `Keywords prints the active keyword list, one per line, in match order.
The built-in list is used unless a "keywords" list is set in the config file
or GET_PAPERS_LIST_KEYWORDS holds a comma-separated list.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		keywords := configuredKeywords()
		if len(keywords) == 0 {
			keywords = extract.DefaultKeywords
		}
		for _, kw := range extract.NewMatcher(keywords).Keywords() {
			fmt.Fprintln(cmd.OutOrStdout(), kw)
		}
	},
}

func init() {
	rootCmd.AddCommand(keywordsCmd)
}

// configuredKeywords returns the "keywords" setting. A config file gives a
// list; an environment value is a single string split on commas, since
// keywords such as "Life Sciences" contain spaces. Nil means none are set.
func configuredKeywords() []string {
	raw, ok := viper.Get("keywords").(string)
	if !ok {
		return viper.GetStringSlice("keywords")
	}

	var keywords []string
	for _, kw := range strings.Split(raw, ",") {
		if strings.TrimSpace(kw) != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}
