package access

import "github.com/polkiloo/vegdelivery/internal/domain/model"

// NavItem is a menu entry.
type NavItem struct {
	Label string
	Route Route
}

var menu = []NavItem{
	{Label: "Admin Dashboard", Route: RouteAdminDashboard},
	{Label: "Pack Orders", Route: RoutePackOrders},
	{Label: "Delivery Orders", Route: RouteDeliveryOrders},
	{Label: "Manager Dashboard", Route: RouteManager},
}

// Navigation returns the menu entries role may open.
func Navigation(role model.Role) []NavItem {
	items := make([]NavItem, 0, 1)
	for _, item := range menu {
		if Can(role, item.Route) {
			items = append(items, item)
		}
	}
	return items
}
