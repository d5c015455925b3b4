// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package validate

// pnrBlacklist holds uppercase English words sharing the 5–6 letter booking
// reference shape: airline jargon plus generic dictionary words. Uppercased
// literals found here are never booking references.
var pnrBlacklist = map[string]bool{}

func init() {
	for _, w := range []string{
		"FLIGHT", "TICKET", "BOARD", "SEATS", "CABIN", "PILOT", "STAFF",
		"HOTEL", "EVENT", "FIRST", "CLASS", "TOTAL", "GROUP", "WORLD",
		"HELLO", "THANK", "DELAY", "CLAIM", "ROUTE", "ADULT", "CHILD",
		"PRICE", "TAXES", "CHECK", "VALID", "ISSUE", "EMAIL", "PHONE",
		"OFFER", "POINT", "MILES", "PARTY", "GUEST", "SORRY", "REPLY",
		"ADMIN", "AGENT", "HOURS", "DATES", "TIMES", "MONTH", "YEARS",
		"COACH", "INFANT", "BAGGAGE", "LUGGAGE", "CREW", "STATUS",
		"GATE", "ARRIVAL", "DEPART", "ROUND", "TRIP", "FARES", "CODES",
		"RULES", "TERMS", "APPLY", "ABOUT", "PRESS", "MEDIA", "LOGIN",
		"WHERE", "THERE", "WHICH", "OTHER", "THEIR", "BELOW", "ABOVE",
		"UNDER", "AFTER", "UNTIL", "SINCE", "WHILE", "NEVER", "AGAIN",
		"ENTRY", "EXIT", "AISLE", "MEALS", "SNACK", "DRINK", "WATER",
		"JUICE", "WINES", "BEERS", "SALES", "DEALS", "CARGO", "FLEET",
		"UNION", "TRUST", "VALUE", "SCORE", "LEVEL", "TIERS", "BASIC",
		"SMART", "SUPER", "HAPPY", "ENJOY", "VISIT", "WATCH", "VIDEO",
		"AUDIO", "MUSIC", "MOVIE", "POWER", "LIGHT", "NIGHT", "DAILY",
		"WEEK", "TODAY", "LATER", "EARLY", "QUICK", "SPEED", "SPACE",
		"PLACE", "TOUCH", "SCREEN", "PANEL", "LEVER", "PEDAL", "WHEEL",
		"TIRES", "BRAKE", "GEARS", "WING", "TAIL", "NOSE", "BODY",
		"PAINT", "COLOR", "WHITE", "BLACK", "GREEN", "STYLE", "MODEL",
		"BUILD", "MAKER", "OWNER", "BUYER", "LEASE", "RENT", "HIRE",
		"COSTS", "SPEND", "MONEY", "CASH", "CARD", "DEBIT", "BANKS",
		"LOANS", "RATES", "TAXIS", "TRAIN", "BUSES", "METRO", "FERRY",
		"SHIPS", "BOAT", "CYCLE", "DRIVE", "RIDER", "WALKS", "STEPS",
		"MILE", "METER", "KILO", "GRAMS", "POUND", "OUNCE", "LITER",
		"GALLON", "REFUND", "CANCEL", "UPDATE", "NOTICE", "ALERT",
		"SAFETY", "OXYGEN", "JACKET", "WINDOW", "MIDDLE", "CENTER",
		"GALLEY", "TOILET", "LOUNGE", "ACCESS", "MEMBER", "SILVER",
		"GOLD", "ELITE", "POINTS", "WALLET", "PAYMENT", "AMOUNT",
		"NUMBER", "COUNT", "COST", "RATE", "FARE", "CHARGES", "DUTY",
		"GOODS", "ITEMS", "BAGS", "PLANE", "AIRBUS", "BOEING", "HELPDESK",
		"SUPPORT", "OFFICE", "MOBILE", "APP", "WEB", "SITE",
		"LINK", "CLICK", "CHOOSE", "OPTION", "ACTION", "RESULT", "ERROR",
		"FAULT", "CASE", "FILE", "RECORD", "DATA", "INFO", "QUERY",
		"ASK", "HELP", "FAQ", "HOME", "MAIN", "MENU", "BACK", "NEXT",
		"PREV", "LAST", "DONE", "FINISH", "START", "END", "STOP",
		"OPEN", "CLOSE", "LOCK", "UNLOCK",
	} {
		pnrBlacklist[w] = true
	}
}

// pnrContextKeywords decide ambiguous all-letter booking reference
// candidates: one of these must appear in the context window.
var pnrContextKeywords = []string{
	"pnr", "record locator", "booking", "reservation", "confirm", "confirmation",
	"itinerary", "ticket", "locator", "ref", "reference",
}

// ffContextKeywords gate frequent-flyer candidates, the broadest and most
// collision-prone of the airline code shapes.
var ffContextKeywords = []string{
	"flyer", "miles", "points", "member", "club", "program", "card",
}

// ambiguousNameWords are common English words that are also given names or
// surnames. Single-token person candidates matching one of these are
// suppressed unless their score clears the ambiguity threshold.
var ambiguousNameWords = map[string]bool{
	"may": true, "will": true, "can": true, "long": true, "young": true,
	"man": true, "king": true, "mark": true, "rose": true, "read": true,
	"book": true,
}
