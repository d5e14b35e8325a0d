package memory

import (
	"time"

	"github.com/polkiloo/vegdelivery/internal/domain/model"
)

type demoCredential struct {
	email    string
	password string
	role     model.Role
}

var demoCredentials = []demoCredential{
	{email: "admin@vegdelivery.com", password: "admin123", role: model.RoleAdmin},
	{email: "manager@vegdelivery.com", password: "manager123", role: model.RoleManager},
	{email: "pack1@vegdelivery.com", password: "pack123", role: model.RolePackaging},
	{email: "pack2@vegdelivery.com", password: "pack123", role: model.RolePackaging},
	{email: "delivery1@vegdelivery.com", password: "delivery123", role: model.RoleDelivery},
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func instant(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func ptr[T any](v T) *T { return &v }

func demoUsers() []model.User {
	return []model.User{
		{ID: "1", Name: "John Customer", Email: "john@example.com", Phone: "+1234567890", Role: model.RoleCustomer, CreatedAt: day("2024-01-15")},
		{ID: "2", Name: "Admin User", Email: "admin@vegdelivery.com", Phone: "+1234567891", Role: model.RoleAdmin, CreatedAt: day("2024-01-10")},
		{ID: "3", Name: "Pack Employee 1", Email: "pack1@vegdelivery.com", Phone: "+1234567892", Role: model.RolePackaging, CreatedAt: day("2024-01-12")},
		{ID: "4", Name: "Delivery Guy 1", Email: "delivery1@vegdelivery.com", Phone: "+1234567893", Role: model.RoleDelivery, CreatedAt: day("2024-01-13")},
		{ID: "5", Name: "Manager User", Email: "manager@vegdelivery.com", Phone: "+1234567894", Role: model.RoleManager, CreatedAt: day("2024-01-08")},
		{ID: "6", Name: "Jane Customer", Email: "jane@example.com", Phone: "+1234567895", Role: model.RoleCustomer, CreatedAt: day("2024-01-20")},
		{ID: "7", Name: "Pack Employee 2", Email: "pack2@vegdelivery.com", Phone: "+1234567896", Role: model.RolePackaging, CreatedAt: day("2024-01-18")},
	}
}

func item(id, vegID, name string, qty, price float64) model.OrderItem {
	return model.OrderItem{ID: id, VegetableID: vegID, VegetableName: name, Quantity: qty, Price: price, Unit: "kg", Available: true}
}

// demoOrders keeps the seeded totals as recorded, ORD-002 included.
func demoOrders() []model.Order {
	john := model.Customer{ID: "1", Name: "John Customer", Phone: "+1234567890", Address: "123 Main St, City"}
	return []model.Order{
		{
			ID:       "ORD-001",
			Customer: john,
			Items: []model.OrderItem{
				item("item-1", "veg-1", "Tomatoes", 2, 50),
				item("item-2", "veg-2", "Onions", 1, 30),
			},
			TotalAmount:  130,
			Status:       model.OrderStatusPlaced,
			DeliveryDate: "2024-08-21",
			CreatedAt:    instant("2024-08-20T10:00:00Z"),
			UpdatedAt:    instant("2024-08-20T10:00:00Z"),
		},
		{
			ID:       "ORD-002",
			Customer: model.Customer{ID: "6", Name: "Jane Customer", Phone: "+1234567895", Address: "456 Oak Ave, City"},
			Items: []model.OrderItem{
				item("item-3", "veg-3", "Carrots", 1.5, 40),
				item("item-4", "veg-4", "Potatoes", 3, 90),
			},
			TotalAmount:               190,
			Status:                    model.OrderStatusAccepted,
			DeliveryDate:              "2024-08-21",
			CreatedAt:                 instant("2024-08-20T11:00:00Z"),
			UpdatedAt:                 instant("2024-08-20T11:30:00Z"),
			AssignedPackagingEmployee: "3",
		},
		{
			ID:       "ORD-003",
			Customer: john,
			Items: []model.OrderItem{
				item("item-5", "veg-5", "Spinach", 0.5, 25),
			},
			TotalAmount:               25,
			Status:                    model.OrderStatusPacked,
			DeliveryDate:              "2024-08-21",
			CreatedAt:                 instant("2024-08-20T09:00:00Z"),
			UpdatedAt:                 instant("2024-08-20T14:00:00Z"),
			AssignedPackagingEmployee: "3",
			AssignedDeliveryEmployee:  "4",
		},
	}
}

func demoVegetables() []model.Vegetable {
	return []model.Vegetable{
		{ID: "veg-1", Name: "Tomatoes", Unit: "kg", MinPrice: 40, MaxPrice: 60, CurrentSellingPrice: 50, BuyPrice: ptr(35.0), IsBought: true, BuyDate: ptr("2024-08-20"), RequiredQuantity: ptr(25.0)},
		{ID: "veg-2", Name: "Onions", Unit: "kg", MinPrice: 25, MaxPrice: 35, CurrentSellingPrice: 30, BuyPrice: ptr(22.0), IsBought: true, BuyDate: ptr("2024-08-20"), RequiredQuantity: ptr(15.0)},
		{ID: "veg-3", Name: "Carrots", Unit: "kg", MinPrice: 35, MaxPrice: 45, CurrentSellingPrice: 40, RequiredQuantity: ptr(20.0)},
		{ID: "veg-4", Name: "Potatoes", Unit: "kg", MinPrice: 25, MaxPrice: 35, CurrentSellingPrice: 30, BuyPrice: ptr(20.0), IsBought: true, BuyDate: ptr("2024-08-20"), RequiredQuantity: ptr(40.0)},
		{ID: "veg-5", Name: "Spinach", Unit: "kg", MinPrice: 40, MaxPrice: 60, CurrentSellingPrice: 50, RequiredQuantity: ptr(10.0)},
	}
}
