// Package access decides which staff role may open which back-office view.
package access

import (
	"strings"

	"github.com/polkiloo/vegdelivery/internal/domain/model"
)

// Route names a back-office view. Parameterized routes keep their pattern form.
type Route string

const (
	RouteLogin          Route = "/login"
	RouteAdminDashboard Route = "/"
	RouteAdminOrder     Route = "/admin/order/:orderId"
	RoutePackOrders     Route = "/packorders"
	RoutePackOrder      Route = "/packorder/:orderId"
	RouteDeliveryOrders Route = "/deliveryorders"
	RouteDeliveryOrder  Route = "/deliveryorder/:orderId"
	RouteManager        Route = "/manager"
)

// Capability is a group of views granted together.
type Capability string

const (
	CapabilityAdmin     Capability = "admin"
	CapabilityPackaging Capability = "packaging"
	CapabilityDelivery  Capability = "delivery"
	CapabilityManager   Capability = "manager"
)

type routeRule struct {
	route      Route
	public     bool
	capability Capability
}

var routeTable = []routeRule{
	{route: RouteLogin, public: true},
	{route: RouteAdminDashboard, capability: CapabilityAdmin},
	{route: RouteAdminOrder, capability: CapabilityAdmin},
	{route: RoutePackOrders, capability: CapabilityPackaging},
	{route: RoutePackOrder, capability: CapabilityPackaging},
	{route: RouteDeliveryOrders, capability: CapabilityDelivery},
	{route: RouteDeliveryOrder, capability: CapabilityDelivery},
	{route: RouteManager, capability: CapabilityManager},
}

var roleCapabilities = map[model.Role]map[Capability]bool{
	model.RoleAdmin:     {CapabilityAdmin: true},
	model.RolePackaging: {CapabilityPackaging: true},
	model.RoleDelivery:  {CapabilityDelivery: true},
	model.RoleManager:   {CapabilityManager: true},
}

var defaultRoutes = map[model.Role]Route{
	model.RoleAdmin:     RouteAdminDashboard,
	model.RolePackaging: RoutePackOrders,
	model.RoleDelivery:  RouteDeliveryOrders,
	model.RoleManager:   RouteManager,
}

// Decision is the outcome of a route check.
type Decision struct {
	Route    Route
	Params   map[string]string
	Allowed  bool
	NotFound bool
	Redirect Route
}

// DefaultRoute returns the landing view of role. Unknown roles land on "/".
func DefaultRoute(role model.Role) Route {
	if r, ok := defaultRoutes[role]; ok {
		return r
	}
	return RouteAdminDashboard
}

// Can reports whether role holds the capability guarding route.
// Public routes are open to everyone.
func Can(role model.Role, route Route) bool {
	rule, ok := ruleFor(route)
	if !ok {
		return false
	}
	return rule.public || roleCapabilities[role][rule.capability]
}

// Resolve matches path against the route table.
func Resolve(path string) (Route, map[string]string, bool) {
	segments := split(path)
	for _, rule := range routeTable {
		if params, ok := match(split(string(rule.route)), segments); ok {
			return rule.route, params, true
		}
	}
	return "", nil, false
}

// Check evaluates whether identity may open path. A nil identity is unauthenticated.
func Check(identity *model.Identity, path string) Decision {
	route, params, ok := Resolve(path)
	if !ok {
		return Decision{NotFound: true}
	}
	return CheckRoute(identity, route, params)
}

// CheckRoute evaluates an already resolved route.
func CheckRoute(identity *model.Identity, route Route, params map[string]string) Decision {
	d := Decision{Route: route, Params: params}
	rule, ok := ruleFor(route)
	switch {
	case !ok:
		d.NotFound = true
	case rule.public:
		d.Allowed = true
	case identity == nil:
		d.Redirect = RouteLogin
	case !roleCapabilities[identity.Role][rule.capability]:
		d.Redirect = DefaultRoute(identity.Role)
	default:
		d.Allowed = true
	}
	return d
}

func ruleFor(route Route) (routeRule, bool) {
	for _, rule := range routeTable {
		if rule.route == route {
			return rule, true
		}
	}
	return routeRule{}, false
}

func split(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

func match(pattern, segments []string) (map[string]string, bool) {
	if len(pattern) != len(segments) {
		return nil, false
	}
	var params map[string]string
	for i, p := range pattern {
		if strings.HasPrefix(p, ":") {
			if segments[i] == "" {
				return nil, false
			}
			if params == nil {
				params = make(map[string]string, 1)
			}
			params[p[1:]] = segments[i]
			continue
		}
		if p != segments[i] {
			return nil, false
		}
	}
	return params, true
}
