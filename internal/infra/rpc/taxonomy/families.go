package taxonomy

// Descriptions of identifiers that carry a number. Lookups reach them after
// Normalize has replaced the number with X.
var families = map[string]string{
	"FLOOD_WAIT_X":               "Please wait X seconds before repeating the action.",
	"FLOOD_PREMIUM_WAIT_X":       "Please wait X seconds before repeating the action, or purchase a Premium subscription to remove this rate limit.",
	"SLOWMODE_WAIT_X":            "Slowmode is enabled in this chat: wait X seconds before sending another message to this chat.",
	"2FA_CONFIRM_WAIT_X":         "Since this account is active and protected by a 2FA password, we will delete it in 1 week for security purposes. You can then recreate the account.",
	"TAKEOUT_INIT_DELAY_X":       "Sorry, for security reasons, you will be able to begin downloading your data in X seconds.",
	"FILE_PART_X_MISSING":        "Part X of the file is missing from storage.",
	"FILE_MIGRATE_X":             "The file to be accessed is currently stored in DC X.",
	"NETWORK_MIGRATE_X":          "The source IP address is associated with DC X, please redirect the query to that DC.",
	"PHONE_MIGRATE_X":            "The phone number a user is trying to use for authorization is associated with DC X.",
	"STATS_MIGRATE_X":            "Channel statistics for the specified channel are stored on DC X, please re-send the query to that DC.",
	"USER_MIGRATE_X":             "The user whose identity is being used to execute queries is associated with DC X.",
	"EMAIL_UNCONFIRMED_X":        "An email confirmation code was sent to the email you provided, it is X characters long.",
	"PREMIUM_SUB_ACTIVE_UNTIL_X": "You already have a premium subscription active until unixtime X.",
}
