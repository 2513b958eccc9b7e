package chirp

import "strconv"

// DisconnectCode is the reason code carried by a Disconnect message.
type DisconnectCode int

const (
	DisconnectShutdown        DisconnectCode = 1
	DisconnectDuplicateStream DisconnectCode = 2
	DisconnectControlRequest  DisconnectCode = 3
	DisconnectStall           DisconnectCode = 4
	DisconnectNormal          DisconnectCode = 5
	DisconnectTokenRevoked    DisconnectCode = 6
	DisconnectAdminLogout     DisconnectCode = 7
	DisconnectMaxMessageLimit DisconnectCode = 9
	DisconnectStreamException DisconnectCode = 10
	DisconnectBrokerStall     DisconnectCode = 11
	DisconnectShedLoad        DisconnectCode = 12
)

var disconnectNames = map[DisconnectCode]string{
	DisconnectShutdown:        "shutdown",
	DisconnectDuplicateStream: "duplicate_stream",
	DisconnectControlRequest:  "control_request",
	DisconnectStall:           "stall",
	DisconnectNormal:          "normal",
	DisconnectTokenRevoked:    "token_revoked",
	DisconnectAdminLogout:     "admin_logout",
	DisconnectMaxMessageLimit: "max_message_limit",
	DisconnectStreamException: "stream_exception",
	DisconnectBrokerStall:     "broker_stall",
	DisconnectShedLoad:        "shed_load",
}

// String returns the code name, or "unknown(N)" for codes the server may add.
func (c DisconnectCode) String() string {
	if name, ok := disconnectNames[c]; ok {
		return name
	}
	return "unknown(" + strconv.Itoa(int(c)) + ")"
}
