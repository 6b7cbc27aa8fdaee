package conversation

import (
	"fmt"
	"strings"

	"github.com/thalaconnect/bloodbot/internal/domain"
	"github.com/thalaconnect/bloodbot/internal/normalize"
)

// escalationURL is where a requester is pointed when no donor matches.
const escalationURL = "https://thala-connect-ai-28.lovable.app/"

const (
	replyMenu = "👋 Hi, how may I help you?\n\n" +
		"Please classify yourself:\n" +
		"1️⃣ Donor\n" +
		"2️⃣ Require Blood (Recipient Request)\n\n" +
		"👉 Reply with 1 or 2 to continue."

	replyReset = "🔄 Reset.\n" +
		"1️⃣ Donor\n" +
		"2️⃣ Require Blood\n\n" +
		"👉 Reply with 1 or 2."

	replyDonorAck = "✅ Great! Registering you as a Donor.\n" +
		"You can reply naturally (e.g., 'A+ in Pune, my name is Ravi')."

	replyRequestAck = "🆘 Okay! Making a Blood Request.\n" +
		"You can reply naturally (e.g., 'Need AB- in Hyderabad')."

	replyInvalidChoice = "⚠ Invalid choice.\nReply 1 for Donor or 2 for Request."

	replyNotUnderstood = "I didn't catch that. Reply 1 for Donor or 2 for Require Blood."

	replyDonorInsertFailed = "⚠ Saved your info locally but DB insert failed. Please try again later."
)

func replyDonorRegistered(rec domain.DonorRecord) string {
	return fmt.Sprintf(
		"✅ Thanks! You're registered as a donor.\nName: %s\nGroup: %s\nPhone: %s\nCity:  %s",
		rec.FullName, rec.BloodType, rec.Phone, rec.City,
	)
}

func replyDonorList(bloodType, city string, matches []domain.DonorMatch) string {
	lines := []string{
		fmt.Sprintf("✅ Donors for %s in %s:", bloodType, city),
		"",
	}
	for i, m := range matches {
		lines = append(lines, fmt.Sprintf("%d. %s — %s (%s)", i+1, m.FullName, normalize.Phone(m.Phone), m.City))
	}
	lines = append(lines, "\n📞 Please contact donors directly.")
	return strings.Join(lines, "\n")
}

func replyNoDonors(bloodType, city string) string {
	return fmt.Sprintf(
		"❌ No donors found for %s in %s.\n"+
			"We’ll notify you if someone becomes available. Meanwhile you can place an emergency request here --> %s",
		bloodType, city, escalationURL,
	)
}
