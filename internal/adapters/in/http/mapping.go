package http

import (
	"tailor/internal/core/application/usecases/queries"
	"tailor/internal/core/domain/model/order"
	"tailor/internal/generated/servers"
)

func fromMeasurements(m *servers.Measurements) order.Measurements {
	if m == nil {
		return order.Measurements{}
	}
	return order.Measurements{
		Chest:         deref(m.Chest),
		Waist:         deref(m.Waist),
		Hip:           deref(m.Hip),
		ShoulderWidth: deref(m.ShoulderWidth),
		SleeveLength:  deref(m.SleeveLength),
		Armhole:       deref(m.Armhole),
		BackLength:    deref(m.BackLength),
		FrontLength:   deref(m.FrontLength),
	}
}

func toMeasurements(m order.Measurements) servers.Measurements {
	return servers.Measurements{
		Chest:         &m.Chest,
		Waist:         &m.Waist,
		Hip:           &m.Hip,
		ShoulderWidth: &m.ShoulderWidth,
		SleeveLength:  &m.SleeveLength,
		Armhole:       &m.Armhole,
		BackLength:    &m.BackLength,
		FrontLength:   &m.FrontLength,
	}
}

func toOrderPage(res queries.ListCustomerOrdersQueryResponse) servers.OrderPage {
	orders := make([]servers.OrderSummary, len(res.Orders))
	for i, o := range res.Orders {
		orders[i] = servers.OrderSummary{
			Id:           o.ID.Bytes(),
			Reference:    o.Reference,
			GarmentType:  string(o.GarmentType),
			OrderDate:    o.OrderDate,
			DeliveryDate: o.DeliveryDate,
			Status:       o.Status.String(),
			Total:        o.Total.StringFixed(2),
			BalanceDue:   o.BalanceDue.StringFixed(2),
			Currency:     o.Currency,
		}
	}

	return servers.OrderPage{
		Orders: orders,
		Pager: servers.Pager{
			Page:      res.Pager.Page,
			PageCount: res.Pager.PageCount,
			PageSize:  res.Pager.PageSize,
			Total:     res.Pager.Total,
		},
		Counters: servers.Counters{
			Total:        res.Counters.Total,
			InProduction: res.Counters.InProduction,
			Ready:        res.Counters.Ready,
			Delivered:    res.Counters.Delivered,
		},
		Sortby:   string(res.SortBy),
		Filterby: string(res.FilterBy),
	}
}

func toOrderDetail(d queries.GetCustomerOrderQueryResponse) servers.OrderDetail {
	activity := make([]servers.Activity, len(d.Activity))
	for i, a := range d.Activity {
		entry := servers.Activity{
			Kind:      string(a.Kind),
			CreatedAt: a.CreatedAt,
		}
		if a.From != "" {
			from := a.From.String()
			entry.From = &from
		}
		if a.To != "" {
			to := a.To.String()
			entry.To = &to
		}
		if a.Body != "" {
			body := a.Body
			entry.Body = &body
		}
		activity[i] = entry
	}

	return servers.OrderDetail{
		Id:           d.ID.Bytes(),
		Reference:    d.Reference,
		CustomerName: d.CustomerName,
		GarmentType:  string(d.GarmentType),
		Fabric:       optional(d.Fabric),
		Color:        optional(d.Color),
		Instructions: optional(d.Instructions),
		Measurements: toMeasurements(d.Measurements),
		OrderDate:    d.OrderDate,
		DeliveryDate: d.DeliveryDate,
		Status:       d.Status.String(),
		Total:        d.Total.StringFixed(2),
		Advance:      d.Advance.StringFixed(2),
		BalanceDue:   d.BalanceDue.StringFixed(2),
		Currency:     d.Currency,
		Activity:     activity,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
