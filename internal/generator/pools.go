package generator

// surnames holds 80 common surnames.
var surnames = []string{
	"陳", "林", "黃", "張", "李", "王", "吳", "劉", "蔡", "楊",
	"許", "鄭", "謝", "郭", "洪", "曾", "邱", "廖", "賴", "徐",
	"周", "葉", "蘇", "莊", "呂", "江", "何", "蕭", "羅", "高",
	"潘", "簡", "朱", "鍾", "彭", "游", "詹", "胡", "施", "沈",
	"余", "盧", "梁", "趙", "顏", "柯", "翁", "魏", "孫", "戴",
	"范", "方", "宋", "鄧", "杜", "傅", "侯", "曹", "溫", "薛",
	"丁", "馬", "蔣", "唐", "卓", "藍", "馮", "姚", "石", "董",
	"紀", "歐", "程", "連", "古", "汪", "湯", "姜", "田", "康",
}

// givenNames holds 120 given-name characters. Repeated characters are
// intentional; selection indexes depend on the exact list length.
var givenNames = []string{
	"家", "豪", "志", "明", "俊", "傑", "建", "宏", "良", "偉",
	"凱", "文", "強", "銘", "憲", "達", "耀", "興", "華", "國",
	"平", "安", "保", "成", "康", "榮", "信", "昌", "盛", "旺",
	"宇", "軒", "辰", "逸", "宥", "睿", "碩", "鈞", "奇", "廷",
	"柏", "翰", "霖", "澤", "楷", "恩", "熙", "瑋", "倫", "澔",
	"博", "揚", "承", "哲", "智", "勇", "仁", "義", "禮", "信",
	"子", "凡", "心", "思", "源", "新", "維", "展", "翼", "翔",
	"雅", "婷", "怡", "君", "淑", "芬", "芳", "美", "麗", "玲",
	"娟", "惠", "玉", "秀", "敏", "靜", "宜", "欣", "慧", "貞",
	"詩", "涵", "筑", "柔", "瑄", "彤", "羽", "甯", "喬", "依",
	"語", "昕", "潔", "晴", "琳", "蓉", "樺", "穎", "璇", "妍",
	"若", "語", "熙", "甯", "唯", "晨", "苡", "安", "芯", "晴",
}

// namePlaceholder masks the middle character of a published name.
const namePlaceholder = "O"
