// slotreport fetches a repository's releases and prints the six resolved
// download slots, for debugging the asset classification without running
// the site.
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/miralabs/mirasite/internal/release"
)

func main() {
	repo := flag.String("repo", "miralabs/mira", "GitHub repo owner/repo")
	prereleases := flag.Bool("prereleases", false, "include pre-releases")
	flag.Parse()

	releases := release.ListReleases(*repo, "slotreport")
	res := release.Resolve(releases, *prereleases)
	if res.Release == nil {
		fmt.Fprintf(os.Stderr, "no release available for %s\n", *repo)
		os.Exit(1)
	}

	fmt.Printf("Release: %s (prerelease=%v, effective includePrereleases=%v)\n\n",
		res.Release.TagName, res.Release.Prerelease, res.IncludePrereleases)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SLOT\tASSET\tSIZE")
	for _, slot := range res.Slots {
		if slot.Asset == nil {
			fmt.Fprintf(w, "%s\t-\t-\n", slot.Key)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", slot.Key, slot.Asset.Name, humanize.Bytes(uint64(slot.Asset.Size)))
	}
	w.Flush()
}
