package models

const (
	LabelDefault    = "official/default"
	LabelCustom     = "custom"
	LabelUnreadable = "unreadable"
)

// ToolStatus is the derived view of a tool's mirror configuration. It is
// computed on demand and never persisted.
type ToolStatus struct {
	Tool       string
	ConfigPath string
	CurrentURL string
	HasURL     bool
	KnownName  string
	Known      bool

	// Err is set when the configuration could not be read.
	Err error
}

// NewToolStatus matches url against the candidate list of the tool.
func NewToolStatus(tool, configPath, url string, hasURL bool, candidates []Mirror) ToolStatus {
	st := ToolStatus{
		Tool:       tool,
		ConfigPath: configPath,
		CurrentURL: url,
		HasURL:     hasURL,
	}
	if !hasURL {
		return st
	}
	if m, ok := FindByURL(candidates, url); ok {
		st.KnownName = m.Name
		st.Known = true
	}
	return st
}

func (s ToolStatus) Label() string {
	switch {
	case s.Err != nil:
		return LabelUnreadable
	case !s.HasURL:
		return LabelDefault
	case s.Known:
		return s.KnownName
	default:
		return LabelCustom
	}
}

type DetectionInfo struct {
	Name      string `json:"name"`
	Installed bool   `json:"installed"`
	Version   string `json:"version,omitempty"`
	Path      string `json:"path,omitempty"`
}
