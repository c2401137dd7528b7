package translate

// builtinEntries 內建風味與食材詞條（英文小寫 → 中文顯示）
var builtinEntries = map[string]string{
	// 基本味覺
	"sweet": "甜", "bitter": "苦", "sour": "酸", "salty": "鹹", "umami": "鮮",
	"acidic": "酸味", "astringent": "澀",

	// 果香
	"fruity": "果香", "citrus": "柑橘", "apple": "蘋果", "pear": "梨",
	"peach": "桃", "apricot": "杏", "plum": "李子", "cherry": "櫻桃",
	"strawberry": "草莓", "raspberry": "覆盆子", "blueberry": "藍莓",
	"pineapple": "鳳梨", "banana": "香蕉", "grape": "葡萄",
	"grapefruit": "葡萄柚", "lemon": "檸檬", "lime": "青檸", "orange": "橙",
	"melon": "甜瓜", "tropical": "熱帶水果", "berry": "漿果", "mango": "芒果",
	"coconut": "椰子", "bergamot": "佛手柑",

	// 花香
	"floral": "花香", "rose": "玫瑰", "jasmine": "茉莉", "lily": "百合",
	"lavender": "薰衣草", "honeysuckle": "金銀花", "muguet": "鈴蘭",
	"violet": "紫羅蘭", "peony": "牡丹", "carnation": "康乃馨",
	"gardenia": "梔子花", "magnolia": "木蘭", "neroli": "橙花",

	// 草本
	"herbal": "草本", "herb": "香草植物", "mint": "薄荷", "peppermint": "胡椒薄荷",
	"menthol": "薄荷醇", "thyme": "百里香", "rosemary": "迷迭香", "basil": "羅勒",
	"sage": "鼠尾草", "oregano": "牛至", "dill": "蒔蘿", "tarragon": "龍蒿",
	"green": "青草", "grassy": "草香", "leafy": "葉香", "hay": "乾草",
	"tea": "茶", "lemongrass": "檸檬草", "eucalyptus": "桉樹",

	// 辛香
	"spicy": "辛香", "spice": "香料", "pungent": "辛辣", "peppery": "胡椒味",
	"pepper": "胡椒", "cinnamon": "肉桂", "clove": "丁香", "anise": "茴香",
	"fennel": "茴香", "ginger": "薑", "mustard": "芥末", "wasabi": "山葵",
	"horseradish": "辣根", "nutmeg": "肉豆蔻", "cardamom": "豆蔻",
	"cumin": "孜然", "coriander": "香菜", "turmeric": "薑黃", "curry": "咖哩",
	"camphor": "樟腦", "licorice": "甘草",

	// 堅果與烘焙
	"nutty": "堅果", "almond": "杏仁", "hazelnut": "榛果", "walnut": "核桃",
	"peanut": "花生", "chestnut": "栗子", "roasted": "烘焙", "toasted": "烘烤",
	"burnt": "焦香", "smoky": "煙燻", "smoke": "煙味", "caramel": "焦糖",
	"caramellic": "焦糖味", "butterscotch": "奶油糖", "malt": "麥芽",
	"bread": "麵包", "bready": "麵包香", "cereal": "穀物", "popcorn": "爆米花",
	"chocolate": "巧克力", "cocoa": "可可", "coffee": "咖啡", "tobacco": "菸草",

	// 乳脂
	"creamy": "奶油", "cream": "乳脂", "butter": "黃油", "buttery": "黃油味",
	"milky": "奶香", "dairy": "乳製品", "cheese": "起司", "cheesy": "起司味",
	"yogurt": "優格", "fatty": "油脂", "oily": "油潤", "waxy": "蠟質",

	// 土壤木質
	"woody": "木質", "wood": "木香", "earthy": "泥土", "mushroom": "蘑菇",
	"musty": "霉味", "moss": "苔蘚", "balsam": "香脂", "balsamic": "香醋",
	"resin": "樹脂", "resinous": "樹脂味", "pine": "松木", "cedar": "雪松",
	"sandalwood": "檀香", "peat": "泥炭",

	// 鮮味蛋白
	"savory": "鮮味", "meaty": "肉香", "meat": "肉", "beef": "牛肉",
	"chicken": "雞肉", "pork": "豬肉", "broth": "高湯", "fishy": "魚腥",
	"fish": "魚", "seafood": "海鮮", "seaweed": "海藻", "egg": "蛋",
	"yeast": "酵母", "soy": "醬油", "truffle": "松露",

	// 發酵與酒
	"fermented": "發酵", "wine": "酒香", "vinegar": "醋", "alcoholic": "酒精",
	"alcohol": "酒味", "rum": "蘭姆", "whiskey": "威士忌",

	// 硫化物與風險氣味
	"sulfur": "硫磺", "sulfurous": "硫磺味", "sulfury": "硫味",
	"garlic": "大蒜", "onion": "洋蔥", "leek": "韭蔥", "scallion": "蔥",
	"alliaceous": "蔥蒜", "rancid": "酸敗", "sweat": "汗味", "sweaty": "汗味",
	"rotten": "腐敗", "putrid": "腐臭",

	// 動物與化工
	"animal": "動物", "musk": "麝香", "leather": "皮革", "metallic": "金屬",
	"chemical": "化學", "plastic": "塑膠", "rubber": "橡膠", "gasoline": "汽油",
	"solvent": "溶劑", "phenolic": "酚類", "medicinal": "藥草",

	// 其他描述
	"fresh": "清新", "warm": "溫暖", "cool": "清涼", "sharp": "尖銳",
	"strong": "濃烈", "mild": "溫和", "faint": "微弱", "fragrant": "芳香",
	"aromatic": "香氣", "honey": "蜂蜜", "maple": "楓糖", "vanilla": "香草",
	"sugar": "糖", "candy": "糖果", "jam": "果醬", "tomato": "番茄",
	"potato": "馬鈴薯", "cucumber": "黃瓜", "cabbage": "高麗菜", "pea": "豌豆",

	// 類別名稱
	"fruit": "水果", "vegetable": "蔬菜", "bakery": "烘焙食品",
	"cereals": "穀類", "dairy products": "乳製品", "beverage": "飲料",
	"herbs and spices": "香草香料", "nuts and seeds": "堅果種籽",
	"meats": "肉類", "seafoods": "海鮮類",
}
