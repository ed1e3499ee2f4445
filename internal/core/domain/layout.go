package domain

// Layout names the controls of the target application that the automation
// flow navigates. Every field matches an accessibility Name unless suffixed ID.
type Layout struct {
	MainWindow         string `yaml:"main_window"`
	NavigationNode     string `yaml:"navigation_node"`
	BaseInput          string `yaml:"base_input"`
	PeriodPattern      string `yaml:"period_pattern"`
	Ribbon             string `yaml:"ribbon"`
	RibbonTabs         string `yaml:"ribbon_tabs"`
	LowerRibbon        string `yaml:"lower_ribbon"`
	OperationTab       string `yaml:"operation_tab"`
	OperationPane      string `yaml:"operation_pane"`
	FileToolbar        string `yaml:"file_toolbar"`
	SaveAsExcel        string `yaml:"save_as_excel"`
	CloseButton        string `yaml:"close_button"`
	OrganizationPaneID string `yaml:"organization_pane_id"`
	OpenButton         string `yaml:"open_button"`
	DisplayButton      string `yaml:"display_button"`
	DisplayButtonID    string `yaml:"display_button_id"`
	SaveDialog         string `yaml:"save_dialog"`
	SidePanel          string `yaml:"side_panel"`
	DataPanel          string `yaml:"data_panel"`
	TargetFolder       string `yaml:"target_folder"`
}

// DefaultLayout returns the control names of the STRAVIS client.
func DefaultLayout() Layout {
	return Layout{
		MainWindow:         "STRAVIS",
		NavigationNode:     "Node1",
		BaseInput:          "Base List/Data Input",
		PeriodPattern:      `^AY.*\(YTD\)$`,
		Ribbon:             "The Ribbon",
		RibbonTabs:         "Ribbon Tabs",
		LowerRibbon:        "Lower Ribbon",
		OperationTab:       "Operation",
		OperationPane:      "Operation",
		FileToolbar:        "File",
		SaveAsExcel:        "Save As Excel",
		CloseButton:        "Close",
		OrganizationPaneID: "pnlCndOrganization",
		OpenButton:         "Open",
		DisplayButton:      "Display",
		DisplayButtonID:    "btnDisp",
		SaveDialog:         "Save As",
		SidePanel:          "sidePanel1",
		DataPanel:          "Data Panel",
		TargetFolder:       "Downloads",
	}
}
