package git

import "context"

// MockTagLister is a TagLister that returns canned tags, for tests.
type MockTagLister struct {
	ListTagsFn func(ctx context.Context) []string
	Calls      int
}

// ListTags implements resolver.TagLister.
func (m *MockTagLister) ListTags(ctx context.Context) []string {
	m.Calls++
	if m.ListTagsFn != nil {
		return m.ListTagsFn(ctx)
	}
	return []string{}
}
