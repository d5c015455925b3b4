// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package personname

// Word sets backing the name heuristics. Built once at package init and
// never mutated; safe for concurrent reads.

// singleSurnames holds romanized single-character Chinese surnames in pinyin
// plus the Cantonese and Hokkien spellings common on HK/TW/SEA bookings.
var singleSurnames = makeSet(
	"bai", "ban", "bao", "bei", "bi", "bian", "biao", "bie", "bin", "bing", "bo", "bu",
	"cai", "cao", "cen", "chai", "chan", "chang", "chao", "che", "chen", "cheng", "chi",
	"chong", "chou", "chu", "chuan", "chuang", "chun", "ci", "cong", "cui", "cun", "cuo",
	"da", "dai", "dan", "dang", "dao", "de", "deng", "di", "dian", "diao", "ding", "diu",
	"dong", "dou", "du", "duan", "dun", "duo", "e", "en", "er", "fa", "fan", "fang",
	"fei", "fen", "feng", "fo", "fou", "fu", "ga", "gai", "gan", "gang", "gao", "ge",
	"gei", "gen", "geng", "gong", "gou", "gu", "gua", "guai", "guan", "guang", "gui",
	"gun", "guo", "ha", "hai", "han", "hang", "hao", "he", "hei", "hen", "heng", "hong",
	"hou", "hu", "hua", "huai", "huan", "huang", "hui", "hun", "huo", "ji", "jia", "jian",
	"jiang", "jiao", "jie", "jin", "jing", "jiong", "jiu", "ju", "juan", "jue", "jun",
	"ka", "kai", "kan", "kang", "kao", "ke", "ken", "keng", "kong", "kou", "ku", "kua",
	"kuai", "kuan", "kuang", "kui", "kun", "kuo", "la", "lai", "lan", "lang", "lao", "le",
	"lei", "leng", "li", "lia", "lian", "liang", "liao", "lie", "lin", "ling", "liu",
	"long", "lou", "lu", "luan", "lun", "luo", "ma", "mai", "man", "mang", "mao", "me",
	"mei", "men", "meng", "mi", "mian", "miao", "mie", "min", "ming", "miu", "mo", "mou",
	"mu", "na", "nai", "nan", "nang", "nao", "ne", "nei", "nen", "neng", "ni", "nian",
	"niang", "niao", "nie", "nin", "ning", "niu", "nong", "nu", "nuan", "o", "ou", "pa",
	"pai", "pan", "pang", "pao", "pei", "pen", "peng", "pi", "pian", "piao", "pie", "pin",
	"ping", "po", "pou", "pu", "qi", "qia", "qian", "qiang", "qiao", "qie", "qin", "qing",
	"qiong", "qiu", "qu", "quan", "que", "qun", "ran", "rang", "rao", "re", "ren", "reng",
	"ri", "rong", "rou", "ru", "ruan", "rui", "run", "ruo", "sa", "sai", "san", "sang",
	"sao", "se", "sen", "seng", "sha", "shai", "shan", "shang", "shao", "she", "shen",
	"sheng", "shi", "shou", "shu", "shua", "shuai", "shuan", "shuang", "shui", "shun",
	"shuo", "si", "song", "sou", "su", "suan", "sui", "sun", "suo", "ta", "tai", "tan",
	"tang", "tao", "te", "teng", "ti", "tian", "tiao", "tie", "ting", "tong", "tou", "tu",
	"tuan", "tui", "tun", "tuo", "wa", "wai", "wan", "wang", "wei", "wen", "weng", "wo",
	"wu", "xi", "xia", "xian", "xiang", "xiao", "xie", "xin", "xing", "xiong", "xiu",
	"xu", "xuan", "xue", "xun", "ya", "yan", "yang", "yao", "ye", "yi", "yin", "ying",
	"yo", "yong", "you", "yu", "yuan", "yue", "yun", "za", "zai", "zan", "zang", "zao",
	"ze", "zei", "zen", "zeng", "zha", "zhai", "zhan", "zhang", "zhao", "zhe", "zhen",
	"zheng", "zhi", "zhong", "zhou", "zhu", "zhua", "zhuai", "zhuan", "zhuang", "zhui",
	"zhun", "zhuo", "zi", "zong", "zou", "zu", "zuan", "zui", "zun", "zuo",
	"lee", "ng", "yung", "yee", "yip", "teoh", "tay", "tham", "woon", "chiu",
	"wong", "hwang", "shyu", "hsu", "suen", "kwok", "ho", "lam", "lo",
	"tsieh", "yuen", "tsang", "chung", "tsui", "shek", "shum", "cheung",
	"cheong", "chueng", "leung", "leong", "yeung", "chau", "lau", "kwan", "kwong", "yau",
)

// compoundSurnames holds romanized two-character surnames. A compound
// surname match is scored higher than a single-surname match.
var compoundSurnames = makeSet(
	"ouyang", "shangguan", "sima", "zhuge", "ximen", "beigong", "gongsun", "chunyu",
	"dantai", "dongfang", "duanmu", "gongxi", "gongye", "guliang", "guanqiu", "haan",
	"huangfu", "jiagu", "jinyun", "lanxu", "liangqiu", "linghu", "lvqiu", "moyao",
	"nangong", "shusun", "situ", "taihu", "weisheng", "wuyan", "xiahou", "xianyu",
	"xiangsi", "xueqiu", "yanshi", "yuchi", "zhaoshe", "zhengxi", "zhongli", "zhongsun",
	"zhuanyu", "zhuansun", "zongzheng", "zuifu", "nalan", "auyeung", "szeto",
)

// surnameBlacklist suppresses English words that collide lexically with
// pinyin syllables ("Long time", "May I", "Chan ge" style false positives).
var surnameBlacklist = makeSet(
	"change", "challenge", "chance", "channel", "charge", "chart", "chat", "cheap",
	"check", "cheese", "chemical", "chest", "chicken", "chief", "child", "china",
	"chinese", "chocolate", "choice", "choose", "christmas", "church", "cinema",
	"admin", "root", "user", "test", "guest", "default", "password", "username",
	"login", "logout", "system", "server", "client", "database", "email", "mail",
	"phone", "mobile", "contact", "info", "information", "address", "name", "id",
	"account", "profile", "setting", "config", "configuration", "api", "interface",
	"example", "gmail", "yahoo", "hotmail", "qq", "sina", "outlook",
	"icloud", "protonmail", "foxmail", "aliyun", "sohu", "yeah", "live", "msn",
	"this", "that", "with", "from", "they", "have", "were", "said", "time", "than",
	"them", "into", "just", "like", "over", "also", "back", "only", "know", "take",
	"year", "good", "some", "come", "make", "well", "very", "when", "much", "would",
	"there", "their", "what", "about", "which", "after", "first", "never", "these",
	"think", "where", "being", "every", "great", "might", "shall", "while", "those",
	"before", "should", "himself", "themselves", "both", "any", "each", "few", "more",
	"most", "other", "such", "who", "whom", "whose", "why",
	"how", "all", "no", "nor", "not", "own", "same", "so", "too",
)

// givenNames covers the western first names most common on reservations.
// The original system leaned on a statistical model for western names; this
// deterministic list keeps detection working when no model is loaded.
var givenNames = makeSet(
	"james", "john", "robert", "michael", "william", "david", "richard", "joseph",
	"thomas", "charles", "christopher", "daniel", "matthew", "anthony", "mark",
	"donald", "steven", "paul", "andrew", "joshua", "kenneth", "kevin", "brian",
	"george", "edward", "ronald", "timothy", "jason", "jeffrey", "ryan", "jacob",
	"gary", "nicholas", "eric", "jonathan", "stephen", "larry", "justin", "scott",
	"brandon", "benjamin", "samuel", "gregory", "frank", "alexander", "raymond",
	"patrick", "jack", "dennis", "jerry", "tyler", "aaron", "jose", "adam", "henry",
	"nathan", "douglas", "zachary", "peter", "kyle", "walter", "ethan", "jeremy",
	"harold", "keith", "christian", "roger", "noah", "gerald", "carl", "terry",
	"sean", "austin", "arthur", "lawrence", "jesse", "dylan", "bryan", "joe",
	"jordan", "billy", "bruce", "albert", "willie", "gabriel", "logan", "alan",
	"juan", "wayne", "roy", "ralph", "randy", "eugene", "vincent", "russell",
	"elijah", "louis", "bobby", "philip", "johnny",
	"mary", "patricia", "jennifer", "linda", "elizabeth", "barbara", "susan",
	"jessica", "sarah", "karen", "lisa", "nancy", "betty", "margaret", "sandra",
	"ashley", "kimberly", "emily", "donna", "michelle", "carol", "amanda",
	"dorothy", "melissa", "deborah", "stephanie", "rebecca", "sharon", "laura",
	"cynthia", "kathleen", "amy", "angela", "shirley", "anna", "brenda", "pamela",
	"emma", "nicole", "helen", "samantha", "katherine", "christine", "debra",
	"rachel", "carolyn", "janet", "catherine", "maria", "heather", "diane", "ruth",
	"julie", "olivia", "joyce", "virginia", "victoria", "kelly", "lauren",
	"christina", "joan", "evelyn", "judith", "megan", "andrea", "cheryl", "hannah",
	"jacqueline", "martha", "gloria", "teresa", "ann", "sara", "madison", "frances",
	"kathryn", "janice", "jean", "alice", "abigail", "julia", "judy", "sophia",
	"grace", "denise", "amber", "doris", "marilyn", "danielle", "beverly",
	"isabella", "theresa", "diana", "natalie", "brittany", "charlotte", "marie",
	"kayla", "alexis", "lori", "jane",
)

// westernSurnames are the most frequent anglophone family names, plus the
// documentation placeholders (Doe) that show up in escalation transcripts.
var westernSurnames = makeSet(
	"smith", "johnson", "williams", "brown", "jones", "garcia", "miller", "davis",
	"rodriguez", "martinez", "hernandez", "lopez", "gonzalez", "wilson", "anderson",
	"thomas", "taylor", "moore", "jackson", "martin", "lee", "perez", "thompson",
	"white", "harris", "sanchez", "clark", "ramirez", "lewis", "robinson", "walker",
	"hall", "allen", "wright", "scott", "torres", "nguyen", "hill",
	"flores", "green", "adams", "nelson", "baker", "rivera", "campbell", "mitchell",
	"carter", "roberts", "gomez", "phillips", "evans", "turner", "diaz", "parker",
	"cruz", "edwards", "collins", "reyes", "stewart", "morris", "morales", "murphy",
	"cook", "rogers", "gutierrez", "ortiz", "morgan", "cooper", "peterson",
	"bailey", "reed", "kelly", "howard", "ramos", "kim", "cox", "ward", "richardson",
	"watson", "brooks", "chavez", "wood", "james", "bennett", "gray", "mendoza",
	"ruiz", "hughes", "price", "alvarez", "castillo", "sanders", "patel", "myers",
	"fisher", "foster", "doe",
)

// leadingStopwords reject pair candidates whose first token is a salutation
// or airline term rather than a name ("Passenger John", "Dear Anna").
var leadingStopwords = makeSet(
	"passenger", "dear", "customer", "hello", "thank", "thanks", "regards",
	"flight", "captain", "agent", "mr", "mrs", "ms", "dr", "miss", "sir", "madam",
)

func makeSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
