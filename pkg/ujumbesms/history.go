package ujumbesms

import "strings"

const StatusDeliveredToTerminal = "DeliveredToTerminal"

// Substrings the gateway embeds in compound failure statuses.
var failedStatusMarkers = []string{"Blacklisted", "Invalid"}

// Messages returns the fetched records. The helpers below return pointers into this slice.
func (r *MessageHistoryApiResponse) Messages() []MessageSent {
	if r.Items == nil {
		return nil
	}
	return r.Items.Data
}

func (r *MessageHistoryApiResponse) filter(keep func(*MessageSent) bool) []*MessageSent {
	var out []*MessageSent
	msgs := r.Messages()
	for i := range msgs {
		if keep(&msgs[i]) {
			out = append(out, &msgs[i])
		}
	}
	return out
}

func (r *MessageHistoryApiResponse) ByStatus(status string) []*MessageSent {
	return r.filter(func(m *MessageSent) bool { return m.Status == status })
}

func (r *MessageHistoryApiResponse) Delivered() []*MessageSent {
	return r.ByStatus(StatusDeliveredToTerminal)
}

func (r *MessageHistoryApiResponse) Failed() []*MessageSent {
	return r.filter(func(m *MessageSent) bool { return IsFailedStatus(m.Status) })
}

// Pending returns records that are neither delivered nor failed.
func (r *MessageHistoryApiResponse) Pending() []*MessageSent {
	return r.filter(func(m *MessageSent) bool {
		return m.Status != StatusDeliveredToTerminal && !IsFailedStatus(m.Status)
	})
}

// ByNumber matches the number exactly; country-code prefixes are not normalized.
func (r *MessageHistoryApiResponse) ByNumber(number string) []*MessageSent {
	return r.filter(func(m *MessageSent) bool { return m.Number == number })
}

func IsFailedStatus(status string) bool {
	for _, marker := range failedStatusMarkers {
		if strings.Contains(status, marker) {
			return true
		}
	}
	return false
}
