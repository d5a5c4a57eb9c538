// Package game implements the scam-spotting training quiz: a static
// bank of labeled sample messages, shuffled rounds, and answer grading.
package game

import (
	"fmt"
	"math/rand"
	"sync"
)

// Label classifies a sample message.
type Label string

const (
	LabelScam       Label = "scam"
	LabelLegitimate Label = "legitimate"
)

// Sample is one quiz item. The label and explanation are only revealed
// after the player answers.
type Sample struct {
	ID          int    `json:"id"`
	Text        string `json:"text"`
	Label       Label  `json:"-"`
	Explanation string `json:"-"`
}

// Answer is the graded outcome of one guess.
type Answer struct {
	ID          int    `json:"id"`
	Correct     bool   `json:"correct"`
	Label       Label  `json:"label"`
	Explanation string `json:"explanation"`
}

var bank = []Sample{
	{
		ID:          1,
		Text:        "Your package could not be delivered. Please confirm your address and pay a $1.99 redelivery fee: http://bit.ly/pkg-redeliver",
		Label:       LabelScam,
		Explanation: "Couriers do not collect redelivery fees over shortened links. The small fee is bait to capture card details.",
	},
	{
		ID:          2,
		Text:        "Hi, it's Sam from the dentist's office confirming your cleaning appointment on Tuesday at 2pm. Reply YES to confirm or call us to reschedule.",
		Label:       LabelLegitimate,
		Explanation: "Appointment confirmations name a specific, expected context and ask for no payment, links, or personal data.",
	},
	{
		ID:          3,
		Text:        "URGENT: Your bank account has been suspended. Verify your identity immediately at secure-bank-login.tk or your funds will be frozen.",
		Label:       LabelScam,
		Explanation: "Urgency, threats, and a free-TLD lookalike domain are classic phishing. Banks never suspend accounts by text link.",
	},
	{
		ID:          4,
		Text:        "Congratulations! You've been selected as the winner of our $5,000 gift card giveaway. Claim now by providing your SSN for verification.",
		Label:       LabelScam,
		Explanation: "Prizes you never entered for, claimed with a Social Security number, are identity-theft bait.",
	},
	{
		ID:          5,
		Text:        "Your monthly statement is now available. Log in to your account through our official website or mobile app to view it.",
		Label:       LabelLegitimate,
		Explanation: "Legitimate statement notices direct you to the official app or site without embedding a login link.",
	},
	{
		ID:          6,
		Text:        "This is the IRS. A lawsuit has been filed against you for unpaid taxes. Call this number immediately and settle with prepaid gift cards to avoid arrest.",
		Label:       LabelScam,
		Explanation: "Tax agencies never demand gift cards or threaten arrest by phone. Gift-card payment is an unrecoverable transfer.",
	},
	{
		ID:          7,
		Text:        "Microsoft Security Alert: a virus was detected on your computer. Call our support line now and grant remote access so we can remove it.",
		Label:       LabelScam,
		Explanation: "Unsolicited tech-support alerts requesting remote access are a takeover scam; vendors do not cold-contact users about viruses.",
	},
	{
		ID:          8,
		Text:        "Reminder: your library books are due back this Friday. Renew online or return them to any branch to avoid late fees.",
		Label:       LabelLegitimate,
		Explanation: "A routine reminder with no links to click, no payment demand, and no personal information requested.",
	},
	{
		ID:          9,
		Text:        "I'm stuck abroad and lost my wallet. Can you wire me $800 today? I'll pay you back as soon as I'm home. Please don't tell anyone.",
		Label:       LabelScam,
		Explanation: "Wire-money-urgently-and-tell-no-one is the stranded-relative scam; secrecy requests are the giveaway.",
	},
	{
		ID:          10,
		Text:        "Your verification code is 948 312. It expires in 10 minutes. If you did not request this code, you can ignore this message.",
		Label:       LabelLegitimate,
		Explanation: "A standard one-time code message: it asks you to do nothing unless you initiated the request.",
	},
}

// Game serves shuffled rounds and grades answers. The injected
// pseudo-random source makes round order reproducible under a fixed
// seed. Safe for concurrent use.
type Game struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a Game seeded with seed.
func New(seed int64) *Game {
	return &Game{rng: rand.New(rand.NewSource(seed))}
}

// Round returns the full sample bank in shuffled order.
func (g *Game) Round() []Sample {
	round := make([]Sample, len(bank))
	copy(round, bank)

	g.mu.Lock()
	g.rng.Shuffle(len(round), func(i, j int) {
		round[i], round[j] = round[j], round[i]
	})
	g.mu.Unlock()

	return round
}

// Grade scores a single guess. claimScam is the player's verdict.
func (g *Game) Grade(id int, claimScam bool) (Answer, error) {
	for _, s := range bank {
		if s.ID == id {
			correct := claimScam == (s.Label == LabelScam)
			return Answer{ID: id, Correct: correct, Label: s.Label, Explanation: s.Explanation}, nil
		}
	}
	return Answer{}, fmt.Errorf("unknown sample id %d", id)
}

// FinalVerdict maps a finished round's score to a verdict message.
func FinalVerdict(score, total int) string {
	switch {
	case total > 0 && score == total:
		return "Perfect score! You're a scam detection expert!"
	case total > 0 && float64(score) >= float64(total)*0.7:
		return "Great job! You're getting good at spotting scams!"
	default:
		return "Keep practicing! Spotting scams takes time to master."
	}
}
