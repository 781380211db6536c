package taxonomy

import (
	"regexp"
	"strings"
)

// internal lists identifiers that describe server side trouble rather than a
// problem with the request. They are never enriched or reported.
var internal = map[string]struct{}{
	"PEER_FLOOD":                        {},
	"USER_DEACTIVATED_BAN":              {},
	"INPUT_METHOD_INVALID":              {},
	"INPUT_FETCH_ERROR":                 {},
	"AUTH_KEY_UNREGISTERED":             {},
	"SESSION_REVOKED":                   {},
	"USER_DEACTIVATED":                  {},
	"RPC_SEND_FAIL":                     {},
	"RPC_CALL_FAIL":                     {},
	"RPC_MCGET_FAIL":                    {},
	"INTERDC_1_CALL_ERROR":              {},
	"INTERDC_2_CALL_ERROR":              {},
	"INTERDC_3_CALL_ERROR":              {},
	"INTERDC_4_CALL_ERROR":              {},
	"INTERDC_5_CALL_ERROR":              {},
	"INTERDC_1_CALL_RICH_ERROR":         {},
	"INTERDC_2_CALL_RICH_ERROR":         {},
	"INTERDC_3_CALL_RICH_ERROR":         {},
	"INTERDC_4_CALL_RICH_ERROR":         {},
	"INTERDC_5_CALL_RICH_ERROR":         {},
	"AUTH_KEY_DUPLICATED":               {},
	"CONNECTION_NOT_INITED":             {},
	"LOCATION_NOT_AVAILABLE":            {},
	"AUTH_KEY_INVALID":                  {},
	"LANG_CODE_EMPTY":                   {},
	"memory limit exit":                 {},
	"memory limit(?)":                   {},
	"INPUT_REQUEST_TOO_LONG":            {},
	"SESSION_PASSWORD_NEEDED":           {},
	"INPUT_FETCH_FAIL":                  {},
	"CONNECTION_SYSTEM_EMPTY":           {},
	"FILE_WRITE_FAILED":                 {},
	"STORAGE_CHOOSE_VOLUME_FAILED":      {},
	"xxx":                               {},
	"AES_DECRYPT_FAILED":                {},
	"Timedout":                          {},
	"SEND_REACTION_RESULT1_INVALID":     {},
	"BOT_POLLS_DISABLED":                {},
	"TEMPNAM_FAILED":                    {},
	"MSG_WAIT_TIMEOUT":                  {},
	"MEMBER_CHAT_ADD_FAILED":            {},
	"CHAT_FROM_CALL_CHANGED":            {},
	"MTPROTO_CLUSTER_INVALID":           {},
	"CONNECTION_DEVICE_MODEL_EMPTY":     {},
	"AUTH_KEY_PERM_EMPTY":               {},
	"UNKNOWN_METHOD":                    {},
	"ENCRYPTION_OCCUPY_FAILED":          {},
	"ENCRYPTION_OCCUPY_ADMIN_FAILED":    {},
	"CHAT_OCCUPY_USERNAME_FAILED":       {},
	"REG_ID_GENERATE_FAILED":            {},
	"CONNECTION_LANG_PACK_INVALID":      {},
	"MSGID_DECREASE_RETRY":              {},
	"API_CALL_ERROR":                    {},
	"STORAGE_CHECK_FAILED":              {},
	"INPUT_LAYER_INVALID":               {},
	"NEED_MEMBER_INVALID":               {},
	"NEED_CHAT_INVALID":                 {},
	"HISTORY_GET_FAILED":                {},
	"CHP_CALL_FAIL":                     {},
	"IMAGE_ENGINE_DOWN":                 {},
	"MSG_RANGE_UNSYNC":                  {},
	"PTS_CHANGE_EMPTY":                  {},
	"CONNECTION_SYSTEM_LANG_CODE_EMPTY": {},
	"WORKER_BUSY_TOO_LONG_RETRY":        {},
	"WP_ID_GENERATE_FAILED":             {},
	"ARR_CAS_FAILED":                    {},
	"CHANNEL_ADD_INVALID":               {},
	"CHANNEL_ADMINS_INVALID":            {},
	"CHAT_OCCUPY_LOC_FAILED":            {},
	"GROUPED_ID_OCCUPY_FAILED":          {},
	"GROUPED_ID_OCCUPY_FAULED":          {},
	"LOG_WRAP_FAIL":                     {},
	"MEMBER_FETCH_FAILED":               {},
	"MEMBER_OCCUPY_PRIMARY_LOC_FAILED":  {},
	"MEMBER_NO_LOCATION":                {},
	"MEMBER_OCCUPY_USERNAME_FAILED":     {},
	"MT_SEND_QUEUE_TOO_LONG":            {},
	"POSTPONED_TIMEOUT":                 {},
	"RPC_CONNECT_FAILED":                {},
	"SHORTNAME_OCCUPY_FAILED":           {},
	"STORE_INVALID_OBJECT_TYPE":         {},
	"STORE_INVALID_SCALAR_TYPE":         {},
	"TMSG_ADD_FAILED":                   {},
	"UNKNOWN_ERROR":                     {},
	"UPLOAD_NO_VOLUME":                  {},
	"USER_NOT_AVAILABLE":                {},
	"VOLUME_LOC_NOT_FOUND":              {},
	"FILE_WRITE_EMPTY":                  {},
	"Internal_Server_Error":             {},
}

// Fragments that mark an identifier as structural or internal wherever they appear.
var internalFragments = []string{
	"Received bad_msg_notification",
	"FLOOD_WAIT_",
	"_MIGRATE_",
	"INPUT_METHOD_INVALID",
	"INPUT_CONSTRUCTOR_INVALID",
	"INPUT_FETCH_ERROR_",
	"https://telegram.org/dl",
}

var internalPrefixes = []string{
	"No workers running",
	"All workers are busy. Active_queries ",
}

var (
	filePartMissing = regexp.MustCompile(`FILE_PART_\d*_MISSING`)
	methodName      = regexp.MustCompile(`^[a-zA-Z0-9._]+$`)
)

// Timeout is expected from methods that wait on a bot, elsewhere it is internal.
var botWaitMethods = map[string]struct{}{
	"messages.getbotcallbackanswer": {},
	"messages.getinlinebotresults":  {},
}

// BOT_MISSING from these methods is an upstream glitch, not a missing bot.
var botMissingMethods = map[string]struct{}{
	"stickers.changeStickerPosition": {},
	"stickers.createStickerSet":      {},
	"messages.uploadMedia":           {},
}

// IsBad reports whether an error is internal or structural and must not be
// enriched by the fallback lookup.
func IsBad(identifier string, code int, method string) bool {
	if _, ok := internal[identifier]; ok {
		return true
	}
	for _, f := range internalFragments {
		if strings.Contains(identifier, f) {
			return true
		}
	}
	for _, p := range internalPrefixes {
		if strings.HasPrefix(identifier, p) {
			return true
		}
	}
	if filePartMissing.MatchString(identifier) {
		return true
	}
	if !methodName.MatchString(method) || isNumeric(method) {
		return true
	}
	if identifier == "Timeout" {
		_, ok := botWaitMethods[strings.ToLower(method)]
		return !ok
	}
	if identifier == "BOT_MISSING" {
		_, ok := botMissingMethods[method]
		return ok
	}
	return false
}

// numeric matches plain decimal numbers, optionally with a fraction or an
// exponent. Inf, NaN and hex literals are not numbers here.
var numeric = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

func isNumeric(s string) bool {
	return numeric.MatchString(s)
}
