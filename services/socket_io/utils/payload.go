package socketio_utils

// Payload pulls the first argument of a socket.io event as a string-keyed
// map. Events with a missing or malformed payload are rejected by the
// callers without touching any game state.
func Payload(args []interface{}) (map[string]interface{}, bool) {
	if len(args) < 1 {
		return nil, false
	}
	payload, ok := args[0].(map[string]interface{})
	return payload, ok
}

func PayloadString(payload map[string]interface{}, key string) (string, bool) {
	v, ok := payload[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// PayloadInt reads a numeric field. JSON numbers arrive as float64.
func PayloadInt(payload map[string]interface{}, key string) (int, bool) {
	switch n := payload[key].(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	case int64:
		return int(n), true
	}
	return 0, false
}
