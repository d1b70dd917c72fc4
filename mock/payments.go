package mock

import (
	"context"

	"github.com/unkn0wn-root/paystore"
)

func (m *MockDB) InsertPaymentIntent(ctx context.Context, intent *paystore.PaymentIntent) (*paystore.PaymentIntent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := scopedKey(intent.MerchantID, intent.PaymentID)
	if _, ok := m.intents[k]; ok {
		return nil, duplicate("insert payment intent")
	}
	out := copyOf(intent)
	out.CreatedAt = now()
	out.ModifiedAt = out.CreatedAt
	m.intents[k] = out
	return copyOf(out), nil
}

func (m *MockDB) FindPaymentIntentByID(ctx context.Context, merchantID, paymentID string) (*paystore.PaymentIntent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.intents[scopedKey(merchantID, paymentID)]
	if !ok {
		return nil, notFound("find payment intent")
	}
	return copyOf(p), nil
}

func (m *MockDB) UpdatePaymentIntent(ctx context.Context, intent *paystore.PaymentIntent) (*paystore.PaymentIntent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := scopedKey(intent.MerchantID, intent.PaymentID)
	cur, ok := m.intents[k]
	if !ok {
		return nil, notFound("update payment intent")
	}
	out := copyOf(intent)
	out.CreatedAt = cur.CreatedAt
	out.ModifiedAt = now()
	m.intents[k] = out
	return copyOf(out), nil
}

func (m *MockDB) InsertPaymentAttempt(ctx context.Context, attempt *paystore.PaymentAttempt) (*paystore.PaymentAttempt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := copyOf(attempt)
	out.AttemptID = orNewID(out.AttemptID)
	k := scopedKey(out.MerchantID, out.AttemptID)
	if _, ok := m.attempts[k]; ok {
		return nil, duplicate("insert payment attempt")
	}
	out.CreatedAt = now()
	out.ModifiedAt = out.CreatedAt
	m.attempts[k] = out
	return copyOf(out), nil
}

func (m *MockDB) FindPaymentAttemptByID(ctx context.Context, merchantID, attemptID string) (*paystore.PaymentAttempt, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	a, ok := m.attempts[scopedKey(merchantID, attemptID)]
	if !ok {
		return nil, notFound("find payment attempt")
	}
	return copyOf(a), nil
}

func (m *MockDB) UpdatePaymentAttempt(ctx context.Context, attempt *paystore.PaymentAttempt) (*paystore.PaymentAttempt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := scopedKey(attempt.MerchantID, attempt.AttemptID)
	cur, ok := m.attempts[k]
	if !ok {
		return nil, notFound("update payment attempt")
	}
	out := copyOf(attempt)
	out.CreatedAt = cur.CreatedAt
	out.ModifiedAt = now()
	m.attempts[k] = out
	return copyOf(out), nil
}

func (m *MockDB) InsertPaymentMethod(ctx context.Context, method *paystore.PaymentMethod) (*paystore.PaymentMethod, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := copyOf(method)
	out.PaymentMethodID = orNewID(out.PaymentMethodID)
	if _, ok := m.paymentMethods[out.PaymentMethodID]; ok {
		return nil, duplicate("insert payment method")
	}
	out.CreatedAt = now()
	m.paymentMethods[out.PaymentMethodID] = out
	return copyOf(out), nil
}

func (m *MockDB) FindPaymentMethodByID(ctx context.Context, paymentMethodID string) (*paystore.PaymentMethod, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	pm, ok := m.paymentMethods[paymentMethodID]
	if !ok {
		return nil, notFound("find payment method")
	}
	return copyOf(pm), nil
}

func (m *MockDB) FindPaymentMethodsByCustomer(ctx context.Context, merchantID, customerID string) ([]*paystore.PaymentMethod, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*paystore.PaymentMethod
	for _, pm := range m.paymentMethods {
		if pm.MerchantID == merchantID && pm.CustomerID == customerID {
			out = append(out, copyOf(pm))
		}
	}
	return out, nil
}

func (m *MockDB) DeletePaymentMethod(ctx context.Context, paymentMethodID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.paymentMethods[paymentMethodID]; !ok {
		return notFound("delete payment method")
	}
	delete(m.paymentMethods, paymentMethodID)
	return nil
}

func (m *MockDB) InsertRefund(ctx context.Context, refund *paystore.Refund) (*paystore.Refund, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := scopedKey(refund.MerchantID, refund.RefundID)
	if _, ok := m.refunds[k]; ok {
		return nil, duplicate("insert refund")
	}
	out := copyOf(refund)
	out.CreatedAt = now()
	out.ModifiedAt = out.CreatedAt
	m.refunds[k] = out
	return copyOf(out), nil
}

func (m *MockDB) FindRefundByID(ctx context.Context, merchantID, refundID string) (*paystore.Refund, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.refunds[scopedKey(merchantID, refundID)]
	if !ok {
		return nil, notFound("find refund")
	}
	return copyOf(r), nil
}

func (m *MockDB) UpdateRefundStatus(ctx context.Context, merchantID, refundID string, status paystore.RefundStatus) (*paystore.Refund, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.refunds[scopedKey(merchantID, refundID)]
	if !ok {
		return nil, notFound("update refund status")
	}
	r.Status = status
	r.ModifiedAt = now()
	return copyOf(r), nil
}

func (m *MockDB) ListRefundsByPaymentID(ctx context.Context, merchantID, paymentID string) ([]*paystore.Refund, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*paystore.Refund
	for _, r := range m.refunds {
		if r.MerchantID == merchantID && r.PaymentID == paymentID {
			out = append(out, copyOf(r))
		}
	}
	return out, nil
}

func (m *MockDB) InsertDispute(ctx context.Context, dispute *paystore.Dispute) (*paystore.Dispute, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := copyOf(dispute)
	out.DisputeID = orNewID(out.DisputeID)
	if _, ok := m.disputes[out.DisputeID]; ok {
		return nil, duplicate("insert dispute")
	}
	out.CreatedAt = now()
	out.ModifiedAt = out.CreatedAt
	m.disputes[out.DisputeID] = out
	return copyOf(out), nil
}

func (m *MockDB) FindDisputeByID(ctx context.Context, disputeID string) (*paystore.Dispute, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	d, ok := m.disputes[disputeID]
	if !ok {
		return nil, notFound("find dispute")
	}
	return copyOf(d), nil
}

func (m *MockDB) UpdateDisputeStatus(ctx context.Context, disputeID string, status paystore.DisputeStatus) (*paystore.Dispute, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, ok := m.disputes[disputeID]
	if !ok {
		return nil, notFound("update dispute status")
	}
	d.Status = status
	d.ModifiedAt = now()
	return copyOf(d), nil
}

func (m *MockDB) InsertMandate(ctx context.Context, mandate *paystore.Mandate) (*paystore.Mandate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := scopedKey(mandate.MerchantID, mandate.MandateID)
	if _, ok := m.mandates[k]; ok {
		return nil, duplicate("insert mandate")
	}
	out := copyOf(mandate)
	out.CreatedAt = now()
	m.mandates[k] = out
	return copyOf(out), nil
}

func (m *MockDB) FindMandateByID(ctx context.Context, merchantID, mandateID string) (*paystore.Mandate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	md, ok := m.mandates[scopedKey(merchantID, mandateID)]
	if !ok {
		return nil, notFound("find mandate")
	}
	return copyOf(md), nil
}

func (m *MockDB) UpdateMandateStatus(ctx context.Context, merchantID, mandateID string, status paystore.MandateStatus) (*paystore.Mandate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	md, ok := m.mandates[scopedKey(merchantID, mandateID)]
	if !ok {
		return nil, notFound("update mandate status")
	}
	md.Status = status
	return copyOf(md), nil
}
