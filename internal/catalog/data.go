package catalog

import (
	"fmt"

	"weighbridge/internal/domain"
)

var baseTrucks = []domain.Record{
	{FieldID: "TRK-1000", FieldLicense: "VA-2657-ZQ", FieldDriver: "Matt Moore", FieldType: "Tri-Axle", FieldCarrier: "Stone Transport", FieldTare: "34.2k"},
	{FieldID: "TRK-1001", FieldLicense: "NC-8923-XP", FieldDriver: "Sarah Johnson", FieldType: "Transfer", FieldCarrier: "Coastal Hauling", FieldTare: "29.3k"},
	{FieldID: "TRK-1002", FieldLicense: "SC-4456-MN", FieldDriver: "Robert Chen", FieldType: "Tri-Axle", FieldCarrier: "Mountain Logistics", FieldTare: "36.8k"},
	{FieldID: "TRK-1003", FieldLicense: "GA-7789-KL", FieldDriver: "Emily Davis", FieldType: "Transfer", FieldCarrier: "Owner Operator", FieldTare: "28.5k"},
	{FieldID: "TRK-1004", FieldLicense: "FL-1122-BC", FieldDriver: "Michael Brown", FieldType: "Tri-Axle", FieldCarrier: "Sunshine Transport", FieldTare: "35.1k"},
	{FieldID: "TRK-1005", FieldLicense: "TN-3344-DE", FieldDriver: "Jennifer Wilson", FieldType: "Transfer", FieldCarrier: "River Valley Logistics", FieldTare: "30.7k"},
	{FieldID: "TRK-1006", FieldLicense: "AL-5566-FG", FieldDriver: "David Martinez", FieldType: "Tri-Axle", FieldCarrier: "Stone Transport", FieldTare: "37.4k"},
	{FieldID: "TRK-1007", FieldLicense: "MS-7788-HI", FieldDriver: "Lisa Anderson", FieldType: "Transfer", FieldCarrier: "Coastal Hauling", FieldTare: "31.2k"},
	{FieldID: "TRK-1008", FieldLicense: "KY-9900-JK", FieldDriver: "James Taylor", FieldType: "Tri-Axle", FieldCarrier: "Mountain Logistics", FieldTare: "33.9k"},
	{FieldID: "TRK-1009", FieldLicense: "WV-2233-LM", FieldDriver: "Patricia White", FieldType: "Transfer", FieldCarrier: "Owner Operator", FieldTare: "29.8k"},
}

var fleetDrivers = []string{
	"Carlos Rivera", "Angela Brooks", "Kevin Nguyen", "Rachel Scott", "Thomas Reed",
	"Monica Hayes", "Brian Foster", "Denise Ward", "Gary Holt", "Nina Patel",
}

var fleetCarriers = []string{
	"Stone Transport", "Coastal Hauling", "Mountain Logistics", "Owner Operator",
	"Sunshine Transport", "River Valley Logistics",
}

var fleetStates = []string{"VA", "NC", "SC", "GA", "FL", "TN", "AL", "KY"}

// Trucks returns the truck fleet. The first ten units are the reference
// trucks; the rest are generated deterministically.
func Trucks() []domain.Record {
	out := make([]domain.Record, 0, 60)
	for _, r := range baseTrucks {
		out = append(out, r.Clone())
	}
	for i := 10; i < 60; i++ {
		kind := "Tri-Axle"
		if i%2 == 1 {
			kind = "Transfer"
		}
		tare := 28.0 + float64((i*37)%100)/10
		out = append(out, domain.Record{
			FieldID:      fmt.Sprintf("TRK-%d", 1000+i),
			FieldLicense: fmt.Sprintf("%s-%04d-%c%c", fleetStates[i%len(fleetStates)], 1000+(i*7919)%9000, 'A'+rune(i%26), 'Z'-rune(i%26)),
			FieldDriver:  fleetDrivers[i%len(fleetDrivers)],
			FieldType:    kind,
			FieldCarrier: fleetCarriers[i%len(fleetCarriers)],
			FieldTare:    fmt.Sprintf("%.1fk", tare),
		})
	}
	return out
}

// Customers returns the customer list.
func Customers() []domain.Record {
	return []domain.Record{
		{FieldName: "Rock Trucking", FieldID: "CUST-1000", FieldLocation: "Louisville, GA", FieldStatus: "COD Only", FieldTerms: "COD", FieldCredit: "-"},
		{FieldName: "Red Excavating", FieldID: "CUST-1001", FieldLocation: "Nashville, IN", FieldStatus: "Active", FieldTerms: "COD", FieldCredit: "$57k"},
		{FieldName: "Cedar Enterprises", FieldID: "CUST-1002", FieldLocation: "Knoxville, FL", FieldStatus: "On Hold", FieldTerms: "Net 45", FieldCredit: "$56k"},
		{FieldName: "Lake LLC", FieldID: "CUST-1003", FieldLocation: "Louisville, OH", FieldStatus: "Active", FieldTerms: "Due on Receipt", FieldCredit: "$62k"},
		{FieldName: "Hill Solutions", FieldID: "CUST-1004", FieldLocation: "Louisville, IN", FieldStatus: "Active", FieldTerms: "Due on Receipt", FieldCredit: "$85k"},
		{FieldName: "Quick Gravel", FieldID: "CUST-1005", FieldLocation: "Atlanta, VA", FieldStatus: "Active", FieldTerms: "Due on Receipt", FieldCredit: "$38k"},
		{FieldName: "Summit Gravel", FieldID: "CUST-1006", FieldLocation: "Lexington, SC", FieldStatus: "Active", FieldTerms: "Net 15", FieldCredit: "$26k"},
		{FieldName: "Blue Builders", FieldID: "CUST-1007", FieldLocation: "Charlotte, NC", FieldStatus: "Active", FieldTerms: "Net 30", FieldCredit: "$72k"},
		{FieldName: "Green Excavating", FieldID: "CUST-1008", FieldLocation: "Raleigh, NC", FieldStatus: "COD Only", FieldTerms: "COD", FieldCredit: "-"},
		{FieldName: "Mountain Corp", FieldID: "CUST-1009", FieldLocation: "Asheville, NC", FieldStatus: "Active", FieldTerms: "Net 15", FieldCredit: "$45k"},
	}
}

// Orders returns the open orders.
func Orders() []domain.Record {
	return []domain.Record{
		{FieldOrder: "ORD-10000", FieldPO: "PO-64537", FieldProject: "Restaurant Pad Site", FieldCustomer: "Coastal Corp", FieldJobSite: "1899 Oak Ln", FieldRemaining: "984T"},
		{FieldOrder: "ORD-10001", FieldPO: "PO-14661", FieldProject: "Church Parking Lot", FieldCustomer: "Maple Gravel", FieldJobSite: "5801 Oak Ave", FieldRemaining: "3,356T"},
		{FieldOrder: "ORD-10002", FieldPO: "PO-41899", FieldProject: "Solar Farm Access", FieldCustomer: "Forest Trucking", FieldJobSite: "5980 Industrial Dr", FieldRemaining: "5,803T"},
		{FieldOrder: "ORD-10003", FieldPO: "PO-58570", FieldProject: "Oak Street Bridge", FieldCustomer: "Central Corp", FieldJobSite: "7722 Industrial Ln", FieldRemaining: "8,787T"},
		{FieldOrder: "ORD-10004", FieldPO: "PO-94389", FieldProject: "School Parking Lot", FieldCustomer: "Delta Excavating", FieldJobSite: "5319 Main Ln", FieldRemaining: "2,870T"},
		{FieldOrder: "ORD-10005", FieldPO: "PO-27341", FieldProject: "Warehouse Foundation", FieldCustomer: "Rock Trucking", FieldJobSite: "4421 Commerce St", FieldRemaining: "1,245T"},
		{FieldOrder: "ORD-10006", FieldPO: "PO-89256", FieldProject: "Hospital Driveway", FieldCustomer: "Red Excavating", FieldJobSite: "6678 Park Blvd", FieldRemaining: "4,521T"},
		{FieldOrder: "ORD-10007", FieldPO: "PO-15678", FieldProject: "Apartment Complex Road", FieldCustomer: "Cedar Enterprises", FieldJobSite: "3345 Elm Ave", FieldRemaining: "6,234T"},
		{FieldOrder: "ORD-10008", FieldPO: "PO-78923", FieldProject: "Shopping Center Pad", FieldCustomer: "Lake LLC", FieldJobSite: "8890 Pine Dr", FieldRemaining: "3,987T"},
		{FieldOrder: "ORD-10009", FieldPO: "PO-45612", FieldProject: "Factory Loading Dock", FieldCustomer: "Hill Solutions", FieldJobSite: "2234 Maple St", FieldRemaining: "7,156T"},
	}
}

// Products returns the sellable materials.
func Products() []domain.Record {
	return []domain.Record{
		{FieldName: "Limestone #57", FieldID: "PROD-0001", FieldDOT: "AASHTO #57", FieldCategory: "Aggregate", FieldStockpile: "Yard 2", FieldPrice: "$19.12/T"},
		{FieldName: "Limestone #67", FieldID: "PROD-0002", FieldDOT: "AASHTO #67", FieldCategory: "Aggregate", FieldStockpile: "Quarry North", FieldPrice: "$12.25/T"},
		{FieldName: "Limestone #8", FieldID: "PROD-0003", FieldDOT: "AASHTO #8", FieldCategory: "Aggregate", FieldStockpile: "Pit A", FieldPrice: "$21.78/T"},
		{FieldName: "Limestone #4", FieldID: "PROD-0004", FieldDOT: "AASHTO #4", FieldCategory: "Aggregate", FieldStockpile: "Quarry South", FieldPrice: "$15.05/T"},
		{FieldName: "Gravel #57", FieldID: "PROD-0005", FieldDOT: "AASHTO #57", FieldCategory: "Aggregate", FieldStockpile: "Pit B", FieldPrice: "$8.20/T"},
		{FieldName: "Gravel #67", FieldID: "PROD-0006", FieldDOT: "AASHTO #67", FieldCategory: "Aggregate", FieldStockpile: "Yard 1", FieldPrice: "$9.45/T"},
		{FieldName: "Crushed Stone #57", FieldID: "PROD-0007", FieldDOT: "AASHTO #57", FieldCategory: "Aggregate", FieldStockpile: "Yard 3", FieldPrice: "$18.50/T"},
		{FieldName: "Limestone #10", FieldID: "PROD-0008", FieldDOT: "AASHTO #10", FieldCategory: "Aggregate", FieldStockpile: "Quarry North", FieldPrice: "$22.30/T"},
		{FieldName: "Gravel #4", FieldID: "PROD-0009", FieldDOT: "AASHTO #4", FieldCategory: "Aggregate", FieldStockpile: "Pit C", FieldPrice: "$11.75/T"},
		{FieldName: "Limestone #89", FieldID: "PROD-0010", FieldDOT: "AASHTO #89", FieldCategory: "Aggregate", FieldStockpile: "Quarry South", FieldPrice: "$16.80/T"},
	}
}

// Records returns the data set of a slot.
func Records(slot domain.Slot) []domain.Record {
	switch slot {
	case domain.SlotCustomer:
		return Customers()
	case domain.SlotOrder:
		return Orders()
	case domain.SlotProduct:
		return Products()
	default:
		return Trucks()
	}
}
