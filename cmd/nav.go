package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/disiqueira/gotree/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/docnav/docnav/internal/nav"
)

var (
	navSet     string
	navShallow bool
)

var navCmd = &cobra.Command{
	Use:   "nav",
	Short: "Inspect the navigation trees",
}

var navTreeCmd = &cobra.Command{
	Use:   "tree [path]",
	Short: "Print navigation trees, marking the sections open for path",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		router, err := navRouter()
		if err != nil {
			return err
		}
		current := ""
		if len(args) == 1 {
			current = args[0]
		}
		sets, err := selectSets(router, current)
		if err != nil {
			return err
		}
		for _, s := range sets {
			fmt.Fprint(cmd.OutOrStdout(), renderTree(s, current, navShallow))
		}
		return nil
	},
}

var navPagesCmd = &cobra.Command{
	Use:   "pages",
	Short: "List pages in reading order",
	RunE: func(cmd *cobra.Command, args []string) error {
		router, err := navRouter()
		if err != nil {
			return err
		}
		sets, err := selectSets(router, "")
		if err != nil {
			return err
		}
		for _, s := range sets {
			writePages(cmd.OutOrStdout(), s)
		}
		return nil
	},
}

var navNeighborsCmd = &cobra.Command{
	Use:   "neighbors <path>",
	Short: "Show the previous and next pages for path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		router, err := navRouter()
		if err != nil {
			return err
		}
		state, err := resolveState(router, args[0])
		if err != nil {
			return err
		}
		writeNeighbors(cmd.OutOrStdout(), state)
		return nil
	},
}

var navCollapseCmd = &cobra.Command{
	Use:   "collapse <path>",
	Short: "Show which sections start collapsed for path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		router, err := navRouter()
		if err != nil {
			return err
		}
		set, err := setFor(router, args[0])
		if err != nil {
			return err
		}
		writeCollapse(cmd.OutOrStdout(), set, args[0], navShallow)
		return nil
	},
}

var navLintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Report structural problems in the navigation trees",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		// Issues are printed below rather than logged.
		router, err := cfg.LoadRouter(zap.NewNop())
		if err != nil {
			return err
		}
		sets, err := selectSets(router, "")
		if err != nil {
			return err
		}
		total := 0
		for _, s := range sets {
			for _, issue := range nav.Lint(s.Tree) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: [%s] %s\n", s.Name, issue.Kind, issue)
				total++
			}
		}
		orphans, err := orphanSources(cfg, router)
		if err != nil {
			return err
		}
		for _, o := range orphans {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: [orphan] %s is not linked from any navigation tree\n", o.Link, o.RelPath)
			total++
		}
		if total > 0 {
			return fmt.Errorf("%d navigation issue(s) found", total)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "No issues found.")
		return nil
	},
}

func init() {
	navCmd.PersistentFlags().StringVar(&navSet, "set", "", "navigation set to use (defaults to all, or the set serving the path)")
	navTreeCmd.Flags().BoolVar(&navShallow, "shallow", false, "expand a section only when one of its direct pages is current")
	navCollapseCmd.Flags().BoolVar(&navShallow, "shallow", false, "expand a section only when one of its direct pages is current")
	navCmd.AddCommand(navTreeCmd, navPagesCmd, navNeighborsCmd, navCollapseCmd, navLintCmd)
	rootCmd.AddCommand(navCmd)
}

func navRouter() (*nav.Router, error) {
	_, logger, router, err := setup()
	if err != nil {
		return nil, err
	}
	defer logger.Sync()
	return router, nil
}

// selectSets honours --set; otherwise it returns the set serving path, or
// every set when path is empty.
func selectSets(router *nav.Router, path string) ([]nav.Set, error) {
	if navSet != "" {
		s, err := router.Set(navSet)
		if err != nil {
			return nil, err
		}
		return []nav.Set{s}, nil
	}
	if path == "" {
		return router.Sets(), nil
	}
	s, err := setFor(router, path)
	if err != nil {
		return nil, err
	}
	return []nav.Set{s}, nil
}

func setFor(router *nav.Router, path string) (nav.Set, error) {
	if navSet != "" {
		return router.Set(navSet)
	}
	s, ok := router.Match(path)
	if !ok {
		return nav.Set{}, fmt.Errorf("no navigation set serves %s", path)
	}
	return s, nil
}

func resolveState(router *nav.Router, path string) (nav.State, error) {
	if navSet == "" {
		state, ok := router.Resolve(path)
		if !ok {
			return nav.State{}, fmt.Errorf("no navigation set serves %s", path)
		}
		return state, nil
	}
	s, err := router.Set(navSet)
	if err != nil {
		return nav.State{}, err
	}
	prev, next := nav.Neighbors(s.Pages(), path)
	return nav.State{
		Path:  path,
		Set:   s.Name,
		Trail: nav.Trail(s.Tree, path),
		Prev:  prev,
		Next:  next,
	}, nil
}

// renderTree draws a set as a tree. Sections are marked [+] when they start
// collapsed for currentPath and [-] when open; the current page gets a *.
func renderTree(s nav.Set, currentPath string, shallow bool) string {
	root := gotree.New(fmt.Sprintf("%s (%s)", s.Name, patternLabel(s.Pattern)))
	for _, e := range s.Tree.Sections {
		addNode(root, e.Node, currentPath, shallow, true)
	}
	return root.Print()
}

func addNode(parent gotree.Tree, n nav.Node, currentPath string, shallow, top bool) {
	if n.IsLeaf() {
		label := fmt.Sprintf("%s  %s", n.Name, n.Link)
		if currentPath != "" && n.Link == currentPath {
			label += " *"
		}
		parent.Add(label)
		return
	}
	marker := "[-]"
	if !top && collapsed(n.Pages, currentPath, shallow) {
		marker = "[+]"
	}
	branch := parent.Add(marker + " " + n.Name)
	for _, child := range n.Pages {
		addNode(branch, child, currentPath, shallow, false)
	}
}

func collapsed(pages []nav.Node, currentPath string, shallow bool) bool {
	if shallow {
		return !nav.ContainsDirect(pages, currentPath)
	}
	return nav.ShouldStartCollapsed(pages, currentPath)
}

func patternLabel(p string) string {
	if p == "" {
		return "all paths"
	}
	return p
}

func writePages(w io.Writer, s nav.Set) {
	pages := s.Pages()
	fmt.Fprintf(w, "%s (%d pages)\n", s.Name, len(pages))
	for i, p := range pages {
		fmt.Fprintf(w, "%4d  %-30s %s\n", i+1, p.Name, p.Link)
	}
}

func writeNeighbors(w io.Writer, state nav.State) {
	fmt.Fprintf(w, "path:     %s\n", state.Path)
	fmt.Fprintf(w, "set:      %s\n", state.Set)
	if len(state.Trail) > 0 {
		fmt.Fprintf(w, "trail:    %s\n", strings.Join(state.Trail, " > "))
	}
	fmt.Fprintf(w, "previous: %s\n", pageLabel(state.Prev))
	fmt.Fprintf(w, "next:     %s\n", pageLabel(state.Next))
}

func pageLabel(p *nav.Page) string {
	if p == nil {
		return "-"
	}
	return fmt.Sprintf("%s (%s)", p.Name, p.Link)
}

// writeCollapse lists every nested section with its starting state.
// Top-level sections are always shown open and are not listed.
func writeCollapse(w io.Writer, s nav.Set, currentPath string, shallow bool) {
	for _, e := range s.Tree.Sections {
		if e.IsLeaf() {
			continue
		}
		walkSections(e.Pages, []string{e.Name}, func(trail []string, n nav.Node) {
			state := "expanded"
			if collapsed(n.Pages, currentPath, shallow) {
				state = "collapsed"
			}
			fmt.Fprintf(w, "%-9s %s\n", state, strings.Join(trail, " > "))
		})
	}
}

func walkSections(nodes []nav.Node, trail []string, fn func([]string, nav.Node)) {
	for _, n := range nodes {
		if n.IsLeaf() {
			continue
		}
		t := append(trail[:len(trail):len(trail)], n.Name)
		fn(t, n)
		walkSections(n.Pages, t, fn)
	}
}
