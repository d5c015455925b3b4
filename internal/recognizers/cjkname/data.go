// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cjkname

// chineseSurnames lists the surname characters anchoring the deterministic
// CJK name pattern: the common simplified set, the traditional variants seen
// on HK/TW bookings, and the frequent two-character compound surnames.
// Compounds must sort ahead of their first character in the alternation, so
// the pattern builder orders entries longest first.
var chineseSurnames = []string{
	// Simplified, single character
	"赵", "钱", "孙", "李", "周", "吴", "郑", "王", "冯", "陈", "褚", "卫", "蒋", "沈", "韩", "杨",
	"朱", "秦", "尤", "许", "何", "吕", "施", "张", "孔", "曹", "严", "华", "金", "魏", "陶", "姜",
	"林", "马", "胡", "高", "梁", "宋", "邓", "叶", "苏", "卢", "罗", "郭", "赖", "谢", "邱", "侯",
	"曾", "黎", "潘", "杜", "邹", "袁", "丁", "蔡", "崔", "薛", "廖", "尹", "段", "雷", "范", "汪",
	// Traditional variants
	"陳", "黃", "張", "劉", "吳", "鄭", "蔣", "鄧", "葉", "蘇", "盧", "羅", "賴", "謝", "鍾",
	"馮", "馬", "楊", "梁", "宋", "許", "蕭", "龔", "譚",
	// Compound surnames, simplified
	"欧阳", "太史", "端木", "上官", "司马", "东方", "独孤", "南宫", "万俟", "闻人", "夏侯", "诸葛", "尉迟", "公羊",
	// Compound surnames, traditional
	"歐陽", "司馬", "東方", "獨孤", "南宮", "萬俟", "聞人", "諸葛", "尉遲",
}
