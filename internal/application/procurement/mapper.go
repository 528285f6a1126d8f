package procurement

import (
	"github.com/stoneworks/inventory-api/internal/application/dto"
	"github.com/stoneworks/inventory-api/internal/domain/entity"
)

func toProcurementResponse(v *entity.ProcurementView) dto.ProcurementResponse {
	return dto.ProcurementResponse{
		ID:                      v.ID,
		VendorID:                v.VendorID,
		VendorName:              v.VendorName,
		ContactPerson:           v.ContactPerson,
		PhoneNumber:             v.PhoneNumber,
		EmailAddress:            v.EmailAddress,
		City:                    v.City,
		State:                   v.State,
		StateCode:               v.StateCode,
		CompleteAddress:         v.CompleteAddress,
		GSTNumber:               v.GSTNumber,
		BankDetails:             v.BankDetails,
		InvoiceDate:             v.InvoiceDate,
		SupplierInvoice:         v.SupplierInvoice,
		VehicleNumber:           v.VehicleNumber,
		GSTType:                 string(v.GSTType),
		TaxPercentage:           v.TaxPercentage,
		FreightCharges:          v.FreightCharges,
		AdditionalTaxableAmount: v.AdditionalTaxableAmount,
		GrandTotal:              v.GrandTotal,
		Comments:                v.Comments,
		TotalItems:              v.TotalItems,
		CreatedAt:               v.CreatedAt,
		UpdatedAt:               v.UpdatedAt,
	}
}

func toItemResponse(v *entity.ProcurementItemView) dto.ProcurementItemResponse {
	out := dto.ProcurementItemResponse{
		ID:                v.ID,
		ProcurementID:     v.ProcurementID,
		SupplierInvoice:   v.SupplierInvoice,
		StoneID:           v.StoneID,
		StoneName:         v.StoneName,
		StoneType:         v.StoneType,
		HSNCodeID:         v.HSNCodeID,
		HSNCode:           v.HSNCode,
		LengthMM:          v.LengthMM,
		WidthMM:           v.WidthMM,
		ThicknessMM:       v.ThicknessMM,
		IsCalibrated:      v.IsCalibrated,
		EdgesTypeID:       v.EdgesTypeID,
		EdgesTypeName:     v.EdgesTypeName,
		FinishingTypeID:   v.FinishingTypeID,
		FinishingTypeName: v.FinishingTypeName,
		StageID:           v.StageID,
		StageName:         v.StageName,
		Quantity:          v.Quantity,
		Units:             string(v.Units),
		Rate:              v.Rate,
		RateUnit:          v.RateUnit,
		ItemAmount:        v.ItemAmount,
		Comments:          v.Comments,
		InventoryItemID:   v.InventoryItemID,
		CreatedAt:         v.CreatedAt,
	}
	if !v.InvoiceDate.IsZero() {
		d := v.InvoiceDate
		out.InvoiceDate = &d
	}
	return out
}

func toSummaryResponse(s entity.ProcurementSummary) dto.ProcurementSummaryResponse {
	return dto.ProcurementSummaryResponse{
		TotalItems:             s.TotalItems,
		TotalProcurementAmount: s.TotalProcurementAmount,
		TaxAmount:              s.TaxAmount,
		GrandTotal:             s.GrandTotal,
		CurrentItemsTotal:      s.CurrentItemsTotal,
	}
}
