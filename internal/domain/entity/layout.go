package entity

// LayoutState holds UI-only flags shared by every dashboard page.
type LayoutState struct {
	SidebarCollapsed bool `json:"sidebarCollapsed"`
}
