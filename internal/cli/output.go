package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/hireloop/identity/internal/onboarding"
	"sigs.k8s.io/yaml"
)

type sessionView struct {
	Step        onboarding.Step        `json:"step"`
	Status      onboarding.Status      `json:"status"`
	CandidateID string                 `json:"candidateId,omitempty"`
	SkipOffered bool                   `json:"skipOffered"`
	Error       string                 `json:"error,omitempty"`
	UploadError string                 `json:"uploadError,omitempty"`
	ProfileData onboarding.ProfileData `json:"profileData"`
}

func newSessionView(c *onboarding.Controller) sessionView {
	state := c.State()
	view := sessionView{
		Step:        state.CurrentStep,
		Status:      state.Status,
		SkipOffered: c.SkipOffered(),
		Error:       state.Error,
		UploadError: state.UploadError,
		ProfileData: state.ProfileData.Serializable(),
	}
	if state.CandidateID != nil {
		view.CandidateID = *state.CandidateID
	}
	return view
}

func printSession(w io.Writer, output string, view sessionView) error {
	switch output {
	case jsonFormat:
		marshalled, err := json.Marshal(view)
		if err != nil {
			return fmt.Errorf("marshalling session: %w", err)
		}
		fmt.Fprintf(w, "%s\n", string(marshalled))
		return nil
	case yamlFormat:
		marshalled, err := yaml.Marshal(view)
		if err != nil {
			return fmt.Errorf("marshalling session: %w", err)
		}
		fmt.Fprintf(w, "%s\n", string(marshalled))
		return nil
	default:
		return printTable(w, view)
	}
}

func printTable(w io.Writer, view sessionView) error {
	tw := tabwriter.NewWriter(w, 0, 8, 1, '\t', 0)
	fmt.Fprintf(tw, "STEP\t%d\n", view.Step)
	fmt.Fprintf(tw, "STATUS\t%s\n", view.Status)
	fmt.Fprintf(tw, "CANDIDATE\t%s\n", view.CandidateID)
	fmt.Fprintf(tw, "SKIP OFFERED\t%t\n", view.SkipOffered)
	if view.Error != "" {
		fmt.Fprintf(tw, "ERROR\t%s\n", view.Error)
	}
	if view.UploadError != "" {
		fmt.Fprintf(tw, "UPLOAD ERROR\t%s\n", view.UploadError)
	}

	keys := make([]string, 0, len(view.ProfileData))
	for k := range view.ProfileData {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(tw, "  %s\t%v\n", k, view.ProfileData[k])
	}
	return tw.Flush()
}
