package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/frobware/go-xdna"
	"github.com/frobware/go-xdna/buffer"
	"github.com/frobware/go-xdna/job"
)

func formatJSON(v any) (string, error) {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal result: %w", err)
	}
	return string(output) + "\n", nil
}

// table renders rows with aligned columns.
func table(header string, rows func(w *tabwriter.Writer)) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, header)
	rows(w)
	w.Flush()
	return b.String()
}

// FormatContexts formats hardware contexts according to flags.
func FormatContexts(contexts []xdna.HWContext, flags *OutputFlags) (string, error) {
	if flags.Output == OutputFormatJSON {
		return formatJSON(contexts)
	}
	return table("ID\tNAME\tSTATUS\tCOLUMNS\tCUS\tFW CTX", func(w *tabwriter.Writer) {
		for _, c := range contexts {
			name := c.Name
			if name == "" {
				name = "-"
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%d\n",
				c.ID, name, c.Status, columnRange(c), len(c.CUs), c.FWContextID)
		}
	}), nil
}

// FormatContext formats one hardware context in detail.
func FormatContext(c xdna.HWContext, flags *OutputFlags) (string, error) {
	if flags.Output == OutputFormatJSON {
		return formatJSON(c)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Context %d", c.ID)
	if c.Name != "" {
		fmt.Fprintf(&b, " (%s)", c.Name)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "  status:    %s\n", c.Status)
	if c.Status == xdna.StatusStop {
		fmt.Fprintf(&b, "  resumes:   %s\n", c.OldStatus)
	}
	fmt.Fprintf(&b, "  columns:   %s (mask %#x)\n", columnRange(c), c.ColMap())
	fmt.Fprintf(&b, "  fw ctx:    %d\n", c.FWContextID)
	fmt.Fprintf(&b, "  tiles:     %d\n", c.NumTiles)
	fmt.Fprintf(&b, "  mem size:  %d\n", c.MemSize)
	fmt.Fprintf(&b, "  max opc:   %d\n", c.MaxOpc)
	if c.QoS.Priority != 0 {
		fmt.Fprintf(&b, "  priority:  %d\n", c.QoS.Priority)
	}
	for i, cu := range c.CUs {
		fmt.Fprintf(&b, "  cu[%d]:     bo=%d function=%d\n", i, cu.BO, cu.Function)
	}
	fmt.Fprintf(&b, "  created:   %s\n", c.CreatedAt.Format("2006-01-02T15:04:05Z07:00"))
	return b.String(), nil
}

func columnRange(c xdna.HWContext) string {
	if c.NumCol == 1 {
		return fmt.Sprintf("%d", c.StartCol)
	}
	return fmt.Sprintf("%d-%d", c.StartCol, c.StartCol+c.NumCol-1)
}

// FormatJobs formats job snapshots according to flags.
func FormatJobs(jobs []job.Info, flags *OutputFlags) (string, error) {
	if flags.Output == OutputFormatJSON {
		return formatJSON(jobs)
	}
	return table("SEQ\tOPCODE\tCU\tSTATE\tSUBMITTED\tDURATION", func(w *tabwriter.Writer) {
		for _, j := range jobs {
			cu := "-"
			if j.CUIndex >= 0 {
				cu = fmt.Sprintf("%d", j.CUIndex)
			}
			dur := "-"
			if !j.FinishedAt.IsZero() {
				dur = j.FinishedAt.Sub(j.SubmittedAt).String()
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
				j.Seq, j.Opcode, cu, j.State, j.SubmittedAt.Format("15:04:05.000"), dur)
		}
	}), nil
}

// FormatBuffers formats buffer objects according to flags.
func FormatBuffers(bufs []buffer.Info, flags *OutputFlags) (string, error) {
	if flags.Output == OutputFormatJSON {
		return formatJSON(bufs)
	}
	return table("HANDLE\tSIZE\tPINS", func(w *tabwriter.Writer) {
		for _, b := range bufs {
			fmt.Fprintf(w, "%d\t%d\t%d\n", b.Handle, b.Size, b.Pins)
		}
	}), nil
}
