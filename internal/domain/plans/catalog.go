package plans

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// SeedLocale is the locale the compiled-in catalog is written in.
const SeedLocale = "en"

var validate = validator.New()

// Catalog is an ordered list of descriptors; order is the seeding order.
type Catalog []Descriptor

// Titles returns the catalog titles in order.
func (c Catalog) Titles() []string {
	out := make([]string, 0, len(c))
	for _, d := range c {
		out = append(out, d.Title)
	}
	return out
}

// Validate checks every descriptor's required fields.
func (c Catalog) Validate() error {
	for i, d := range c {
		if err := d.Validate(); err != nil {
			return fmt.Errorf("catalog entry %d (%q): %w", i, d.Title, err)
		}
	}
	return nil
}

// Validate checks the required fields of one descriptor.
func (d Descriptor) Validate() error {
	if err := validate.Struct(d); err != nil {
		return errors.New(formatValidation(err))
	}
	return nil
}

func formatValidation(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		default:
			msgs = append(msgs, field+" is invalid")
		}
	}
	return strings.Join(msgs, ", ")
}

// DefaultCatalog returns a fresh copy of the compiled-in plan catalog.
func DefaultCatalog() Catalog {
	out := make(Catalog, len(defaultCatalog))
	for i, d := range defaultCatalog {
		d.Features = append([]string(nil), d.Features...)
		out[i] = d
	}
	return out
}

var defaultCatalog = Catalog{
	{
		Title:       "MLM Binary Plan",
		Subtitle:    "Two legs, balanced growth",
		Description: "Every distributor builds a left and a right leg. Commissions are paid on the volume of the weaker leg, which rewards teamwork and keeps both sides of the tree growing. Carry-forward, capping and flush-out rules are fully configurable.",
		Icon:        "git-branch",
		Features: []string{
			"Pair matching and binary bonus",
			"Configurable carry forward and flush out",
			"Daily, weekly and monthly capping",
			"Auto and manual placement",
		},
	},
	{
		Title:       "MLM Matrix Plan",
		Subtitle:    "Fixed width, fixed depth",
		Description: "A forced matrix limits the number of frontline positions and the number of paid levels. Once a level fills, new members spill over into the next available slot, so members benefit from the efforts of their upline.",
		Icon:        "grid-3x3",
		Features: []string{
			"Any width by depth combination",
			"Automatic spillover",
			"Matrix completion bonus",
			"Level commission tables",
		},
	},
	{
		Title:       "MLM Unilevel Plan",
		Subtitle:    "Unlimited frontline",
		Description: "Distributors can sponsor as many people as they like on their first level. Payouts are made per level down to a configured depth, making the plan easy to explain and easy to start with.",
		Icon:        "list-tree",
		Features: []string{
			"Unlimited width",
			"Per-level commission percentages",
			"Compression of inactive members",
			"Rank based depth unlocks",
		},
	},
	{
		Title:       "MLM Board Plan",
		Subtitle:    "Cycle boards and split",
		Description: "Members join a board and move up as it fills. When a board completes it splits into two new boards and the member at the top cycles out with a payout and re-enters a higher board.",
		Icon:        "layout-dashboard",
		Features: []string{
			"Multi-stage boards",
			"Automatic board split",
			"Re-entry on cycle",
			"Board completion payouts",
		},
	},
	{
		Title:       "MLM Stair Step Plan",
		Subtitle:    "Climb ranks, break away",
		Description: "Distributors climb steps based on personal and group volume, earning a higher percentage at every step. On reaching the top step they break away from their upline, who keep earning an override on the breakaway group.",
		Icon:        "trending-up",
		Features: []string{
			"Volume based rank steps",
			"Differential commissions",
			"Breakaway overrides",
			"Rank qualification reports",
		},
	},
	{
		Title:       "MLM Generation Plan",
		Subtitle:    "Pay by generation, not level",
		Description: "Commissions are calculated on generations defined by qualified leaders in the downline instead of on raw levels. Leaders are rewarded for developing other leaders.",
		Icon:        "users",
		Features: []string{
			"Leader defined generations",
			"Generation bonus percentages",
			"Qualification rules per generation",
			"Leadership pools",
		},
	},
	{
		Title:       "MLM Australian Binary Plan",
		Subtitle:    "Binary with cycle payouts",
		Description: "A binary variant that pays on cycles of matched volume rather than on pairs. Balanced legs trigger a cycle bonus and remaining volume carries forward to the next cycle.",
		Icon:        "repeat",
		Features: []string{
			"Cycle based matching",
			"Carry forward of unmatched volume",
			"Cycle caps per period",
			"Sponsor bonus",
		},
	},
	{
		Title:       "MLM Monoline Plan",
		Subtitle:    "One line for everyone",
		Description: "All members are placed in a single line in order of joining. Every new member below you adds to your earnings, which makes the plan simple to follow and easy to promote.",
		Icon:        "arrow-down-wide-narrow",
		Features: []string{
			"Single leg placement",
			"Position based payouts",
			"Direct referral bonus",
			"Transparent queue view",
		},
	},
	{
		Title:       "MLM Party Plan",
		Subtitle:    "Sell through home parties",
		Description: "Hosts organize product parties and earn rewards on the sales made at their events, while consultants earn commissions on their own sales and on the parties of the hosts they recruit.",
		Icon:        "party-popper",
		Features: []string{
			"Host rewards and credits",
			"Event sales tracking",
			"Consultant commissions",
			"Guest order management",
		},
	},
	{
		Title:       "MLM Gift Plan",
		Subtitle:    "Peer to peer giving",
		Description: "Members send gifts to members above them and receive gifts from members who join below them. Every transfer is recorded and confirmed inside the system.",
		Icon:        "gift",
		Features: []string{
			"Peer to peer gift transfers",
			"Proof of payment upload",
			"Confirmation workflow",
			"Level based gift amounts",
		},
	},
	{
		Title:       "MLM Repurchase Plan",
		Subtitle:    "Reward repeat orders",
		Description: "Commissions are generated from repeat purchases of consumable products. Members maintain activity through monthly orders and earn on the repurchase volume of their team.",
		Icon:        "shopping-cart",
		Features: []string{
			"Repurchase volume tracking",
			"Monthly activity rules",
			"Autoship support",
			"Level income on repurchase",
		},
	},
	{
		Title:       "MLM Emgold Plan",
		Subtitle:    "Stage based binary cycles",
		Description: "A staged plan where members advance through boards of increasing value. Completing a stage pays a reward and promotes the member to the next stage.",
		Icon:        "medal",
		Features: []string{
			"Multi-stage progression",
			"Stage completion rewards",
			"Automatic promotion",
			"Stage history reports",
		},
	},
	{
		Title:       "MLM Investment Plan",
		Subtitle:    "Packages with scheduled returns",
		Description: "Members purchase packages that pay returns on a schedule, combined with referral and level income from the packages bought by their team.",
		Icon:        "piggy-bank",
		Features: []string{
			"Package based returns",
			"Configurable payout schedule",
			"Referral income",
			"Level income on packages",
		},
	},
	{
		Title:       "MLM Spillover Binary Plan",
		Subtitle:    "Binary with upline spillover",
		Description: "New members recruited by the upline fill the first open position in the downline, so members gain team volume from recruitment above them.",
		Icon:        "waves",
		Features: []string{
			"Extreme left or right spillover",
			"Weak leg auto placement",
			"Binary pair matching",
			"Spillover reports",
		},
	},
	{
		Title:       "MLM Crowdfunding Plan",
		Subtitle:    "Fund projects as a network",
		Description: "Members contribute to shared campaigns and earn from contributions made by the members they introduce. Campaign goals and disbursements are tracked end to end.",
		Icon:        "hand-coins",
		Features: []string{
			"Campaign goals and progress",
			"Contribution tracking",
			"Referral rewards",
			"Disbursement records",
		},
	},
	{
		Title:       "MLM Donation Plan",
		Subtitle:    "Level based donations",
		Description: "Members donate to sponsors at each level and receive donations from members who join below them. Donation amounts increase with each level reached.",
		Icon:        "heart-handshake",
		Features: []string{
			"Level wise donation amounts",
			"Donation confirmation",
			"Upgrade on completion",
			"Donation ledger",
		},
	},
	{
		Title:       "MLM Help Plan",
		Subtitle:    "Provide help, get help",
		Description: "Members provide help to others and get help in return once their request reaches the front of the queue. Matching between providers and receivers is automatic.",
		Icon:        "life-buoy",
		Features: []string{
			"Provide and get help queues",
			"Automatic matching",
			"Timers and penalties",
			"Growth percentage settings",
		},
	},
	{
		Title:       "MLM Single Leg Plan",
		Subtitle:    "Everyone in one team",
		Description: "The whole network grows in a single leg. Members earn from all joiners below them within configured limits, with rank based rewards as the leg grows.",
		Icon:        "move-vertical",
		Features: []string{
			"Single leg tree",
			"Team size based ranks",
			"Direct income",
			"Rank achievement bonus",
		},
	},
	{
		Title:       "MLM Cryptocurrency Plan",
		Subtitle:    "Compensation in digital assets",
		Description: "Joining fees and payouts are settled in cryptocurrency. Wallet integration records deposits and withdrawals while the underlying compensation structure stays configurable.",
		Icon:        "bitcoin",
		Features: []string{
			"Wallet deposits and withdrawals",
			"Multi-coin support",
			"Exchange rate handling",
			"Any compensation structure",
		},
	},
	{
		Title:       "MLM Hybrid Plan",
		Subtitle:    "Combine plans in one business",
		Description: "A hybrid plan combines two or more compensation structures, for example binary with unilevel, so a business can reward both recruitment and long-term team building.",
		Icon:        "combine",
		Features: []string{
			"Mix binary, matrix and unilevel",
			"Independent bonus engines",
			"Unified payout reports",
			"Per-plan rank rules",
		},
	},
}
