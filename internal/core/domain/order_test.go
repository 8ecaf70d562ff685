package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/stallchain/internal/apperrors"
	"github.com/SscSPs/stallchain/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placeOrder(t *testing.T, typ domain.OrderType, now time.Time) *domain.Order {
	t.Helper()
	in := domain.NewOrderInput{
		StallID:   "stall-1",
		OrderType: typ,
		Items: []domain.OrderItem{
			{ProductID: "p-dosa", Name: "Dosa", Quantity: 2, UnitPrice: dec("80")},
			{ProductID: "p-tea", Name: "Tea", Quantity: 3, UnitPrice: dec("20")},
		},
		Discount:    dec("20"),
		PaymentMode: domain.PaymentUPI,
	}
	if typ == domain.OrderDelivery {
		in.Delivery = &domain.DeliveryInfo{ZoneID: "zone-1", Address: "12 MG Road", DistanceKm: dec("3")}
	}
	o, err := domain.NewOrder("ord-1", in, clerk, now)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	now := at("12:00")
	o := placeOrder(t, domain.OrderTakeaway, now)

	assert.True(t, dec("220").Equal(o.Subtotal))
	assert.True(t, dec("200").Equal(o.Total))
	assert.Equal(t, domain.OrderPlaced, o.Status)
	require.Len(t, o.Timeline, 1)
	assert.Equal(t, now, o.Timeline[0].At)
}

func TestNewOrder_Validation(t *testing.T) {
	base := domain.NewOrderInput{
		StallID:   "stall-1",
		OrderType: domain.OrderDineIn,
		Items:     []domain.OrderItem{{ProductID: "p", Quantity: 1, UnitPrice: dec("10")}},
	}
	tests := []struct {
		name   string
		mutate func(in *domain.NewOrderInput)
	}{
		{"no items", func(in *domain.NewOrderInput) { in.Items = nil }},
		{"zero quantity", func(in *domain.NewOrderInput) { in.Items[0].Quantity = 0 }},
		{"discount above subtotal", func(in *domain.NewOrderInput) { in.Discount = dec("11") }},
		{"unknown type", func(in *domain.NewOrderInput) { in.OrderType = "drive-thru" }},
		{"delivery without address", func(in *domain.NewOrderInput) {
			in.OrderType = domain.OrderDelivery
			in.Delivery = &domain.DeliveryInfo{ZoneID: "zone-1"}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := base
			in.Items = append([]domain.OrderItem(nil), base.Items...)
			tt.mutate(&in)
			_, err := domain.NewOrder("o", in, clerk, time.Now())
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestOrder_ApplyDelivery(t *testing.T) {
	now := at("12:00")
	o := placeOrder(t, domain.OrderDelivery, now)
	z := newZone()

	require.NoError(t, o.ApplyDelivery(z, now))
	assert.True(t, dec("35").Equal(o.DeliveryCharge))
	assert.True(t, dec("235").Equal(o.Total))
	assert.Equal(t, domain.DeliveryWindow{MinTime: 25, MaxTime: 40}, o.Delivery.EstimatedWindow)

	z.MinimumOrderAmount = dec("1000")
	assert.ErrorIs(t, o.ApplyDelivery(z, now), apperrors.ErrValidation)
	assert.True(t, dec("35").Equal(o.DeliveryCharge))

	takeaway := placeOrder(t, domain.OrderTakeaway, now)
	assert.ErrorIs(t, takeaway.ApplyDelivery(newZone(), now), apperrors.ErrValidation)
}

func TestOrder_DeliveryTimeline(t *testing.T) {
	now := at("12:00")
	o := placeOrder(t, domain.OrderDelivery, now)

	for i, s := range []domain.OrderStatus{domain.OrderConfirmed, domain.OrderPreparing, domain.OrderReady} {
		require.NoError(t, o.AdvanceStatus(s, clerk, "", now.Add(time.Duration(i+1)*time.Minute)))
	}

	assert.ErrorIs(t, o.AdvanceStatus(domain.OrderDelivered, clerk, "", now), apperrors.ErrInvalidStateTransition)
	assert.ErrorIs(t, o.AdvanceStatus(domain.OrderOutForDelivery, clerk, "", now), apperrors.ErrValidation)

	require.NoError(t, o.AssignRider("p1"))
	require.NoError(t, o.AdvanceStatus(domain.OrderOutForDelivery, clerk, "", now))
	require.NoError(t, o.AdvanceStatus(domain.OrderDelivered, clerk, "handed over", now))

	statuses := make([]domain.OrderStatus, 0, len(o.Timeline))
	for _, ev := range o.Timeline {
		statuses = append(statuses, ev.Status)
	}
	assert.Equal(t, []domain.OrderStatus{
		domain.OrderPlaced, domain.OrderConfirmed, domain.OrderPreparing, domain.OrderReady,
		domain.OrderOutForDelivery, domain.OrderDelivered,
	}, statuses)
	assert.Equal(t, "handed over", o.Timeline[len(o.Timeline)-1].Note)
}

func TestOrder_TakeawaySkipsDispatch(t *testing.T) {
	now := at("12:00")
	o := placeOrder(t, domain.OrderTakeaway, now)
	for _, s := range []domain.OrderStatus{domain.OrderConfirmed, domain.OrderPreparing, domain.OrderReady} {
		require.NoError(t, o.AdvanceStatus(s, clerk, "", now))
	}
	assert.ErrorIs(t, o.AdvanceStatus(domain.OrderOutForDelivery, clerk, "", now), apperrors.ErrInvalidStateTransition)
	require.NoError(t, o.AdvanceStatus(domain.OrderDelivered, clerk, "", now))
}

func TestOrder_Cancel(t *testing.T) {
	now := at("12:00")
	o := placeOrder(t, domain.OrderDineIn, now)
	require.NoError(t, o.AdvanceStatus(domain.OrderConfirmed, clerk, "", now))
	assert.ErrorIs(t, o.Cancel(clerk, "", now), apperrors.ErrValidation)
	require.NoError(t, o.Cancel(clerk, "customer left", now))
	assert.Equal(t, domain.OrderCancelled, o.Status)
	assert.Len(t, o.Timeline, 3)

	ready := placeOrder(t, domain.OrderDineIn, now)
	for _, s := range []domain.OrderStatus{domain.OrderConfirmed, domain.OrderPreparing, domain.OrderReady} {
		require.NoError(t, ready.AdvanceStatus(s, clerk, "", now))
	}
	assert.ErrorIs(t, ready.Cancel(clerk, "too late", now), apperrors.ErrInvalidStateTransition)
	assert.ErrorIs(t, ready.Cancel(clerk, "", now), apperrors.ErrInvalidStateTransition)
	assert.ErrorIs(t, o.AdvanceStatus(domain.OrderPreparing, clerk, "", now), apperrors.ErrInvalidStateTransition)
}
