package root

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"vitacoach/internal/catalog"
	"vitacoach/internal/ui"
)

func query(args []string) string {
	return strings.Join(args, " ")
}

func newPatientsCmd() *cobra.Command {
	var risk string

	cmd := &cobra.Command{
		Use:   "patients [query]",
		Short: "Search patients (doctor view)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			list, err := svc.SearchPatients(ctx, query(args), catalog.RiskLevel(strings.ToLower(risk)))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconDoctor, fmt.Sprintf("Patients (%d)", len(list))))
			for _, p := range list {
				fmt.Fprintf(out, "- %s %s, %d %s %s\n", ui.Key.Render(p.ID), p.Name, p.Age,
					ui.Muted.Render(p.Condition+" · last visit "+p.LastVisit+" · risk"), ui.RiskText(string(p.Risk)))
			}
			if len(list) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(no matches)"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&risk, "risk", "", "Filter by risk (low|moderate|high)")
	return cmd
}

func newPatientCmd() *cobra.Command {
	var tab string

	cmd := &cobra.Command{
		Use:   "patient <id>",
		Short: "Show a patient's detail (doctor view)",
		Args:  exactlyOne("patient id"),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			d, err := svc.PatientDetail(ctx, args[0], catalog.ParseTab(tab))
			if err != nil {
				return err
			}
			printPatientDetail(cmd.OutOrStdout(), d)
			return nil
		},
	}

	cmd.Flags().StringVarP(&tab, "tab", "t", string(catalog.TabOverview), "Section (overview|labs|genetics|plan)")
	return cmd
}

func printPatientDetail(out io.Writer, d *catalog.PatientDetail) {
	p := d.Patient
	fmt.Fprintln(out, ui.Heading(ui.IconPatient, p.Name))
	var tabs []string
	for _, t := range catalog.Tabs {
		if t == d.Tab {
			tabs = append(tabs, ui.Key.Render("["+string(t)+"]"))
		} else {
			tabs = append(tabs, ui.Muted.Render(string(t)))
		}
	}
	fmt.Fprintln(out, strings.Join(tabs, " "))
	fmt.Fprintln(out, "")

	switch d.Tab {
	case catalog.TabLabs:
		if len(d.Labs) == 0 {
			fmt.Fprintln(out, ui.Muted.Render("No lab results on file."))
		}
		for _, l := range d.Labs {
			fmt.Fprintf(out, "- %s: %g %s %s %s\n", l.Biomarker, l.Value, l.Unit, ui.LabText(string(l.Status)), ui.Muted.Render(l.Date))
		}
	case catalog.TabGenetics:
		if len(d.Markers) == 0 {
			fmt.Fprintln(out, ui.Muted.Render("No genetic markers on file."))
		}
		for _, m := range d.Markers {
			fmt.Fprintf(out, "- %s %s (%s) %s\n    %s\n", ui.IconDNA, m.Gene, m.Variant, m.Genotype, ui.Muted.Render(m.Impact+". "+m.Recommendation))
		}
	case catalog.TabPlan:
		if d.Plan == nil {
			fmt.Fprintln(out, ui.Muted.Render("No lifestyle plan assigned."))
			return
		}
		printPlan(out, *d.Plan)
	default:
		fmt.Fprintln(out, ui.LabelValue("Age", p.Age))
		fmt.Fprintln(out, ui.LabelValue("Email", p.Email))
		fmt.Fprintln(out, ui.LabelValue("Condition", p.Condition))
		fmt.Fprintln(out, ui.LabelValue("Risk", ui.RiskText(string(p.Risk))))
		fmt.Fprintln(out, ui.LabelValue("Last visit", p.LastVisit))
		fmt.Fprintln(out, ui.LabelValue("Flagged labs", d.Flagged))
	}
}

func printPlan(out io.Writer, p catalog.LifestylePlan) {
	fmt.Fprintf(out, "%s %s\n", ui.H2.Render(p.Name), ui.Muted.Render(fmt.Sprintf("(%s, %d weeks)", p.Focus, p.Weeks)))
	for _, a := range p.Actions {
		fmt.Fprintf(out, "- [%s] %s %s\n", a.Category, a.Text, ui.Muted.Render(a.Frequency))
	}
}

func newLiteratureCmd() *cobra.Command {
	var tag string

	cmd := &cobra.Command{
		Use:   "literature [query]",
		Short: "Search the research library",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			list := catalog.SearchLiterature(query(args), tag)
			fmt.Fprintln(out, ui.Heading(ui.IconBook, fmt.Sprintf("Literature (%d)", len(list))))
			for _, l := range list {
				fmt.Fprintf(out, "- %s %s\n    %s\n", l.Title, ui.Muted.Render(fmt.Sprintf("(%s, %d)", l.Journal, l.Year)), ui.Muted.Render(l.Authors))
				if u := l.DOIURL(); u != "" {
					fmt.Fprintf(out, "    %s\n", ui.Key.Render(u))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&tag, "tag", "", "Only entries with this tag")
	return cmd
}

func newSupplementsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "supplements [query]",
		Short: "Search the supplement guide",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			list := catalog.SearchSupplements(query(args))
			fmt.Fprintln(out, ui.Heading(ui.IconPill, fmt.Sprintf("Supplements (%d)", len(list))))
			for _, s := range list {
				fmt.Fprintf(out, "- %s %s\n    %s\n", s.Name, ui.Muted.Render("("+s.Category+", evidence: "+s.Evidence+")"), ui.Muted.Render(s.Benefit+" · "+s.Dosage))
			}
			return nil
		},
	}
}

func newGeneticsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "genetics [query]",
		Short: "Search genetic markers (doctor view)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			list, err := svc.SearchGenetics(ctx, query(args))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconDNA, fmt.Sprintf("Genetic markers (%d)", len(list))))
			for _, m := range list {
				fmt.Fprintf(out, "- %s %s %s %s\n    %s\n", ui.Key.Render(m.PatientID), m.Gene, m.Variant, m.Genotype, ui.Muted.Render(m.Impact))
			}
			return nil
		},
	}
}

func newPlansCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plans [id]",
		Short: "List lifestyle plan templates or show one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				p, err := catalog.GetPlan(args[0])
				if err != nil {
					return err
				}
				printPlan(out, p)
				return nil
			}
			fmt.Fprintln(out, ui.Heading(ui.IconHeart, "Lifestyle plans"))
			for _, p := range catalog.Plans() {
				fmt.Fprintf(out, "- %s %s %s\n", ui.Key.Render(p.ID), p.Name, ui.Muted.Render(fmt.Sprintf("(%s, %d weeks, %d actions)", p.Focus, p.Weeks, len(p.Actions))))
			}
			return nil
		},
	}
}
