package comuni

// Cadastral code table ported from the reference dataset: every Italian
// provincial capital plus the most common municipalities and foreign country
// codes (Z prefix, province "EE"). This is deliberately a partial table;
// codes outside it still validate, they just resolve to no place name.
var catastali = map[string]Municipality{
	"A944": {Code: "A944", Name: "BARI", Province: "BA"},
	"A952": {Code: "A952", Name: "BARLETTA", Province: "BT"},
	"B354": {Code: "B354", Name: "BOLOGNA", Province: "BO"},
	"B157": {Code: "B157", Name: "BOLZANO", Province: "BZ"},
	"B180": {Code: "B180", Name: "BRESCIA", Province: "BS"},
	"B428": {Code: "B428", Name: "CAGLIARI", Province: "CA"},
	"B963": {Code: "B963", Name: "CAMPOBASSO", Province: "CB"},
	"C351": {Code: "C351", Name: "CATANZARO", Province: "CZ"},
	"D612": {Code: "D612", Name: "FIRENZE", Province: "FI"},
	"E041": {Code: "E041", Name: "GENOVA", Province: "GE"},
	"E625": {Code: "E625", Name: "L'AQUILA", Province: "AQ"},
	"E463": {Code: "E463", Name: "LATINA", Province: "LT"},
	"F205": {Code: "F205", Name: "MILANO", Province: "MI"},
	"F839": {Code: "F839", Name: "NAPOLI", Province: "NA"},
	"G273": {Code: "G273", Name: "PALERMO", Province: "PA"},
	"G337": {Code: "G337", Name: "PARMA", Province: "PR"},
	"G478": {Code: "G478", Name: "PERUGIA", Province: "PG"},
	"G482": {Code: "G482", Name: "PESARO", Province: "PU"},
	"G535": {Code: "G535", Name: "PIACENZA", Province: "PC"},
	"G702": {Code: "G702", Name: "POTENZA", Province: "PZ"},
	"H223": {Code: "H223", Name: "REGGIO CALABRIA", Province: "RC"},
	"H224": {Code: "H224", Name: "REGGIO EMILIA", Province: "RE"},
	"H501": {Code: "H501", Name: "ROMA", Province: "RM"},
	"H703": {Code: "H703", Name: "SALERNO", Province: "SA"},
	"I452": {Code: "I452", Name: "TORINO", Province: "TO"},
	"I726": {Code: "I726", Name: "TRENTO", Province: "TN"},
	"I403": {Code: "I403", Name: "TRIESTE", Province: "TS"},
	"L219": {Code: "L219", Name: "UDINE", Province: "UD"},
	"L736": {Code: "L736", Name: "VENEZIA", Province: "VE"},
	"L781": {Code: "L781", Name: "VERONA", Province: "VR"},
	"A271": {Code: "A271", Name: "ANCONA", Province: "AN"},
	"A515": {Code: "A515", Name: "AOSTA", Province: "AO"},
	"A052": {Code: "A052", Name: "AGRIGENTO", Province: "AG"},
	"A119": {Code: "A119", Name: "ALESSANDRIA", Province: "AL"},
	"A399": {Code: "A399", Name: "AREZZO", Province: "AR"},
	"A479": {Code: "A479", Name: "ASCOLI PICENO", Province: "AP"},
	"A662": {Code: "A662", Name: "ASTI", Province: "AT"},
	"A669": {Code: "A669", Name: "AVELLINO", Province: "AV"},
	"B111": {Code: "B111", Name: "BELLUNO", Province: "BL"},
	"B041": {Code: "B041", Name: "BENEVENTO", Province: "BN"},
	"B249": {Code: "B249", Name: "BERGAMO", Province: "BG"},
	"B832": {Code: "B832", Name: "BIELLA", Province: "BI"},
	"C219": {Code: "C219", Name: "CALTANISSETTA", Province: "CL"},
	"C352": {Code: "C352", Name: "CATANIA", Province: "CT"},
	"C632": {Code: "C632", Name: "CHIETI", Province: "CH"},
	"C858": {Code: "C858", Name: "COMO", Province: "CO"},
	"C904": {Code: "C904", Name: "COSENZA", Province: "CS"},
	"C933": {Code: "C933", Name: "CREMONA", Province: "CR"},
	"C980": {Code: "C980", Name: "CROTONE", Province: "KR"},
	"D009": {Code: "D009", Name: "CUNEO", Province: "CN"},
	"D258": {Code: "D258", Name: "ENNA", Province: "EN"},
	"D461": {Code: "D461", Name: "FERRARA", Province: "FE"},
	"D643": {Code: "D643", Name: "FOGGIA", Province: "FG"},
	"D705": {Code: "D705", Name: "FORLI'", Province: "FC"},
	"D791": {Code: "D791", Name: "FROSINONE", Province: "FR"},
	"E098": {Code: "E098", Name: "GORIZIA", Province: "GO"},
	"E205": {Code: "E205", Name: "GROSSETO", Province: "GR"},
	"E289": {Code: "E289", Name: "IMPERIA", Province: "IM"},
	"E335": {Code: "E335", Name: "ISERNIA", Province: "IS"},
	"E473": {Code: "E473", Name: "LA SPEZIA", Province: "SP"},
	"E506": {Code: "E506", Name: "LECCE", Province: "LE"},
	"E507": {Code: "E507", Name: "LECCO", Province: "LC"},
	"E648": {Code: "E648", Name: "LIVORNO", Province: "LI"},
	"E704": {Code: "E704", Name: "LODI", Province: "LO"},
	"E715": {Code: "E715", Name: "LUCCA", Province: "LU"},
	"E785": {Code: "E785", Name: "MACERATA", Province: "MC"},
	"E835": {Code: "E835", Name: "MANTOVA", Province: "MN"},
	"E877": {Code: "E877", Name: "MASSA", Province: "MS"},
	"E891": {Code: "E891", Name: "MATERA", Province: "MT"},
	"E956": {Code: "E956", Name: "MESSINA", Province: "ME"},
	"F161": {Code: "F161", Name: "MODENA", Province: "MO"},
	"F770": {Code: "F770", Name: "NOVARA", Province: "NO"},
	"F809": {Code: "F809", Name: "NUORO", Province: "NU"},
	"F844": {Code: "F844", Name: "OLBIA", Province: "SS"},
	"F848": {Code: "F848", Name: "ORISTANO", Province: "OR"},
	"G126": {Code: "G126", Name: "PADOVA", Province: "PD"},
	"G388": {Code: "G388", Name: "PAVIA", Province: "PV"},
	"G628": {Code: "G628", Name: "PISA", Province: "PI"},
	"G636": {Code: "G636", Name: "PISTOIA", Province: "PT"},
	"G713": {Code: "G713", Name: "PORDENONE", Province: "PN"},
	"G786": {Code: "G786", Name: "PRATO", Province: "PO"},
	"H141": {Code: "H141", Name: "RAGUSA", Province: "RG"},
	"H163": {Code: "H163", Name: "RAVENNA", Province: "RA"},
	"H282": {Code: "H282", Name: "RIETI", Province: "RI"},
	"H294": {Code: "H294", Name: "RIMINI", Province: "RN"},
	"H612": {Code: "H612", Name: "ROVIGO", Province: "RO"},
	"I119": {Code: "I119", Name: "SASSARI", Province: "SS"},
	"I138": {Code: "I138", Name: "SAVONA", Province: "SV"},
	"I329": {Code: "I329", Name: "SIENA", Province: "SI"},
	"I356": {Code: "I356", Name: "SIRACUSA", Province: "SR"},
	"I362": {Code: "I362", Name: "SONDRIO", Province: "SO"},
	"I588": {Code: "I588", Name: "TARANTO", Province: "TA"},
	"I625": {Code: "I625", Name: "TERAMO", Province: "TE"},
	"I632": {Code: "I632", Name: "TERNI", Province: "TR"},
	"I785": {Code: "I785", Name: "TRAPANI", Province: "TP"},
	"I819": {Code: "I819", Name: "TREVISO", Province: "TV"},
	"L049": {Code: "L049", Name: "VARESE", Province: "VA"},
	"L378": {Code: "L378", Name: "VERBANIA", Province: "VB"},
	"L380": {Code: "L380", Name: "VERCELLI", Province: "VC"},
	"L565": {Code: "L565", Name: "VICENZA", Province: "VI"},
	"L682": {Code: "L682", Name: "VITERBO", Province: "VT"},
	"M297": {Code: "M297", Name: "VIBO VALENTIA", Province: "VV"},
	"A089": {Code: "A089", Name: "ALBANO LAZIALE", Province: "RM"},
	"B715": {Code: "B715", Name: "BUSTO ARSIZIO", Province: "VA"},
	"C129": {Code: "C129", Name: "CAIVANO", Province: "NA"},
	"C573": {Code: "C573", Name: "CESENA", Province: "FC"},
	"C675": {Code: "C675", Name: "CINISELLO BALSAMO", Province: "MI"},
	"D969": {Code: "D969", Name: "GIUGLIANO IN CAMPANIA", Province: "NA"},
	"E256": {Code: "E256", Name: "GUIDONIA MONTECELIO", Province: "RM"},
	"E415": {Code: "E415", Name: "JESOLO", Province: "VE"},
	"F158": {Code: "F158", Name: "MESTRE", Province: "VE"},
	"F152": {Code: "F152", Name: "MODICA", Province: "RG"},
	"F240": {Code: "F240", Name: "MOLFETTA", Province: "BA"},
	"F257": {Code: "F257", Name: "MONCALIERI", Province: "TO"},
	"F280": {Code: "F280", Name: "MONFALCONE", Province: "GO"},
	"F299": {Code: "F299", Name: "MONOPOLI", Province: "BA"},
	"F309": {Code: "F309", Name: "MONREALE", Province: "PA"},
	"F329": {Code: "F329", Name: "MONTEBELLUNA", Province: "TV"},
	"F537": {Code: "F537", Name: "MONTESILVANO", Province: "PE"},
	"F656": {Code: "F656", Name: "NETTUNO", Province: "RM"},
	"F799": {Code: "F799", Name: "NOCERA INFERIORE", Province: "SA"},
	"G224": {Code: "G224", Name: "PAGANI", Province: "SA"},
	"G393": {Code: "G393", Name: "PATERNÒ", Province: "CT"},
	"G568": {Code: "G568", Name: "PIOMBINO", Province: "LI"},
	"G687": {Code: "G687", Name: "POMIGLIANO D'ARCO", Province: "NA"},
	"G693": {Code: "G693", Name: "POMPEI", Province: "NA"},
	"G716": {Code: "G716", Name: "PORICI", Province: "NA"},
	"G795": {Code: "G795", Name: "POZZUOLI", Province: "NA"},
	"G902": {Code: "G902", Name: "QUARTU SANT'ELENA", Province: "CA"},
	"H727": {Code: "H727", Name: "SAN BENEDETTO DEL TRONTO", Province: "AP"},
	"H785": {Code: "H785", Name: "SAN DONÀ DI PIAVE", Province: "VE"},
	"H798": {Code: "H798", Name: "SAN GIOVANNI ROTONDO", Province: "FG"},
	"I073": {Code: "I073", Name: "SANREMO", Province: "IM"},
	"I072": {Code: "I072", Name: "SAN SEVERO", Province: "FG"},
	"I234": {Code: "I234", Name: "SESTO SAN GIOVANNI", Province: "MI"},
	"L698": {Code: "L698", Name: "VIAREGGIO", Province: "LU"},
	"L840": {Code: "L840", Name: "VIGEVANO", Province: "PV"},
	"M082": {Code: "M082", Name: "VITTORIA", Province: "RG"},
	"Z100": {Code: "Z100", Name: "ALBANIA", Province: "EE"},
	"Z102": {Code: "Z102", Name: "ANDORRA", Province: "EE"},
	"Z103": {Code: "Z103", Name: "AUSTRIA", Province: "EE"},
	"Z104": {Code: "Z104", Name: "BELGIO", Province: "EE"},
	"Z106": {Code: "Z106", Name: "BULGARIA", Province: "EE"},
	"Z107": {Code: "Z107", Name: "DANIMARCA", Province: "EE"},
	"Z108": {Code: "Z108", Name: "FINLANDIA", Province: "EE"},
	"Z109": {Code: "Z109", Name: "FRANCIA", Province: "EE"},
	"Z110": {Code: "Z110", Name: "GERMANIA", Province: "EE"},
	"Z112": {Code: "Z112", Name: "REGNO UNITO", Province: "EE"},
	"Z113": {Code: "Z113", Name: "GRECIA", Province: "EE"},
	"Z114": {Code: "Z114", Name: "IRLANDA", Province: "EE"},
	"Z115": {Code: "Z115", Name: "ISLANDA", Province: "EE"},
	"Z116": {Code: "Z116", Name: "LIECHTENSTEIN", Province: "EE"},
	"Z117": {Code: "Z117", Name: "LUSSEMBURGO", Province: "EE"},
	"Z118": {Code: "Z118", Name: "MALTA", Province: "EE"},
	"Z119": {Code: "Z119", Name: "MONACO", Province: "EE"},
	"Z120": {Code: "Z120", Name: "NORVEGIA", Province: "EE"},
	"Z121": {Code: "Z121", Name: "PAESI BASSI", Province: "EE"},
	"Z122": {Code: "Z122", Name: "POLONIA", Province: "EE"},
	"Z123": {Code: "Z123", Name: "PORTOGALLO", Province: "EE"},
	"Z124": {Code: "Z124", Name: "ROMANIA", Province: "EE"},
	"Z125": {Code: "Z125", Name: "SAN MARINO", Province: "EE"},
	"Z126": {Code: "Z126", Name: "SPAGNA", Province: "EE"},
	"Z127": {Code: "Z127", Name: "SVEZIA", Province: "EE"},
	"Z128": {Code: "Z128", Name: "SVIZZERA", Province: "EE"},
	"Z129": {Code: "Z129", Name: "UNGHERIA", Province: "EE"},
	"Z130": {Code: "Z130", Name: "UCRAINA", Province: "EE"},
	"Z131": {Code: "Z131", Name: "RUSSIA", Province: "EE"},
	"Z132": {Code: "Z132", Name: "ESTONIA", Province: "EE"},
	"Z133": {Code: "Z133", Name: "LETTONIA", Province: "EE"},
	"Z134": {Code: "Z134", Name: "LITUANIA", Province: "EE"},
	"Z135": {Code: "Z135", Name: "CROAZIA", Province: "EE"},
	"Z136": {Code: "Z136", Name: "SLOVENIA", Province: "EE"},
	"Z138": {Code: "Z138", Name: "MACEDONIA", Province: "EE"},
	"Z139": {Code: "Z139", Name: "MOLDAVIA", Province: "EE"},
	"Z140": {Code: "Z140", Name: "SLOVACCHIA", Province: "EE"},
	"Z149": {Code: "Z149", Name: "REPUBBLICA CECA", Province: "EE"},
	"Z150": {Code: "Z150", Name: "SERBIA", Province: "EE"},
	"Z153": {Code: "Z153", Name: "BIELORUSSIA", Province: "EE"},
	"Z154": {Code: "Z154", Name: "BOSNIA ERZEGOVINA", Province: "EE"},
	"Z158": {Code: "Z158", Name: "MONTENEGRO", Province: "EE"},
	"Z159": {Code: "Z159", Name: "KOSOVO", Province: "EE"},
	"Z200": {Code: "Z200", Name: "EGITTO", Province: "EE"},
	"Z203": {Code: "Z203", Name: "LIBIA", Province: "EE"},
	"Z204": {Code: "Z204", Name: "MAROCCO", Province: "EE"},
	"Z205": {Code: "Z205", Name: "NIGERIA", Province: "EE"},
	"Z208": {Code: "Z208", Name: "SENEGAL", Province: "EE"},
	"Z210": {Code: "Z210", Name: "GHANA", Province: "EE"},
	"Z211": {Code: "Z211", Name: "COSTA D'AVORIO", Province: "EE"},
	"Z215": {Code: "Z215", Name: "SOMALIA", Province: "EE"},
	"Z217": {Code: "Z217", Name: "ETIOPIA", Province: "EE"},
	"Z218": {Code: "Z218", Name: "ERITREA", Province: "EE"},
	"Z219": {Code: "Z219", Name: "SUDAFRICA", Province: "EE"},
	"Z229": {Code: "Z229", Name: "TUNISIA", Province: "EE"},
	"Z235": {Code: "Z235", Name: "CAMERUN", Province: "EE"},
	"Z243": {Code: "Z243", Name: "ALGERIA", Province: "EE"},
	"Z300": {Code: "Z300", Name: "AFGHANISTAN", Province: "EE"},
	"Z301": {Code: "Z301", Name: "ARABIA SAUDITA", Province: "EE"},
	"Z302": {Code: "Z302", Name: "BAHREIN", Province: "EE"},
	"Z303": {Code: "Z303", Name: "BANGLADESH", Province: "EE"},
	"Z304": {Code: "Z304", Name: "MYANMAR", Province: "EE"},
	"Z306": {Code: "Z306", Name: "CINA", Province: "EE"},
	"Z307": {Code: "Z307", Name: "CIPRO", Province: "EE"},
	"Z308": {Code: "Z308", Name: "COREA DEL NORD", Province: "EE"},
	"Z309": {Code: "Z309", Name: "COREA DEL SUD", Province: "EE"},
	"Z310": {Code: "Z310", Name: "EMIRATI ARABI UNITI", Province: "EE"},
	"Z311": {Code: "Z311", Name: "FILIPPINE", Province: "EE"},
	"Z312": {Code: "Z312", Name: "GIAPPONE", Province: "EE"},
	"Z313": {Code: "Z313", Name: "GIORDANIA", Province: "EE"},
	"Z314": {Code: "Z314", Name: "INDIA", Province: "EE"},
	"Z315": {Code: "Z315", Name: "INDONESIA", Province: "EE"},
	"Z316": {Code: "Z316", Name: "IRAN", Province: "EE"},
	"Z317": {Code: "Z317", Name: "IRAQ", Province: "EE"},
	"Z318": {Code: "Z318", Name: "ISRAELE", Province: "EE"},
	"Z319": {Code: "Z319", Name: "KUWAIT", Province: "EE"},
	"Z320": {Code: "Z320", Name: "LAOS", Province: "EE"},
	"Z321": {Code: "Z321", Name: "LIBANO", Province: "EE"},
	"Z322": {Code: "Z322", Name: "MALESIA", Province: "EE"},
	"Z323": {Code: "Z323", Name: "MALDIVE", Province: "EE"},
	"Z324": {Code: "Z324", Name: "MONGOLIA", Province: "EE"},
	"Z325": {Code: "Z325", Name: "NEPAL", Province: "EE"},
	"Z326": {Code: "Z326", Name: "OMAN", Province: "EE"},
	"Z327": {Code: "Z327", Name: "PAKISTAN", Province: "EE"},
	"Z329": {Code: "Z329", Name: "QATAR", Province: "EE"},
	"Z330": {Code: "Z330", Name: "SINGAPORE", Province: "EE"},
	"Z331": {Code: "Z331", Name: "SIRIA", Province: "EE"},
	"Z332": {Code: "Z332", Name: "SRI LANKA", Province: "EE"},
	"Z333": {Code: "Z333", Name: "THAILANDIA", Province: "EE"},
	"Z335": {Code: "Z335", Name: "TURCHIA", Province: "EE"},
	"Z337": {Code: "Z337", Name: "VIETNAM", Province: "EE"},
	"Z338": {Code: "Z338", Name: "YEMEN", Province: "EE"},
	"Z340": {Code: "Z340", Name: "KAZAKISTAN", Province: "EE"},
	"Z341": {Code: "Z341", Name: "UZBEKISTAN", Province: "EE"},
	"Z348": {Code: "Z348", Name: "ARMENIA", Province: "EE"},
	"Z349": {Code: "Z349", Name: "AZERBAIGIAN", Province: "EE"},
	"Z350": {Code: "Z350", Name: "GEORGIA", Province: "EE"},
	"Z351": {Code: "Z351", Name: "KIRGHIZISTAN", Province: "EE"},
	"Z352": {Code: "Z352", Name: "TAGIKISTAN", Province: "EE"},
	"Z353": {Code: "Z353", Name: "TURKMENISTAN", Province: "EE"},
	"Z354": {Code: "Z354", Name: "TAIWAN", Province: "EE"},
	"Z400": {Code: "Z400", Name: "STATI UNITI D'AMERICA", Province: "EE"},
	"Z401": {Code: "Z401", Name: "CANADA", Province: "EE"},
	"Z402": {Code: "Z402", Name: "MESSICO", Province: "EE"},
	"Z403": {Code: "Z403", Name: "GUATEMALA", Province: "EE"},
	"Z404": {Code: "Z404", Name: "COSTA RICA", Province: "EE"},
	"Z405": {Code: "Z405", Name: "CUBA", Province: "EE"},
	"Z407": {Code: "Z407", Name: "REPUBBLICA DOMINICANA", Province: "EE"},
	"Z409": {Code: "Z409", Name: "EL SALVADOR", Province: "EE"},
	"Z411": {Code: "Z411", Name: "HAITI", Province: "EE"},
	"Z413": {Code: "Z413", Name: "HONDURAS", Province: "EE"},
	"Z414": {Code: "Z414", Name: "GIAMAICA", Province: "EE"},
	"Z415": {Code: "Z415", Name: "NICARAGUA", Province: "EE"},
	"Z416": {Code: "Z416", Name: "PANAMA", Province: "EE"},
	"Z500": {Code: "Z500", Name: "ARGENTINA", Province: "EE"},
	"Z501": {Code: "Z501", Name: "BOLIVIA", Province: "EE"},
	"Z502": {Code: "Z502", Name: "BRASILE", Province: "EE"},
	"Z503": {Code: "Z503", Name: "CILE", Province: "EE"},
	"Z504": {Code: "Z504", Name: "COLOMBIA", Province: "EE"},
	"Z505": {Code: "Z505", Name: "ECUADOR", Province: "EE"},
	"Z507": {Code: "Z507", Name: "PARAGUAY", Province: "EE"},
	"Z508": {Code: "Z508", Name: "PERU'", Province: "EE"},
	"Z509": {Code: "Z509", Name: "SURINAME", Province: "EE"},
	"Z510": {Code: "Z510", Name: "URUGUAY", Province: "EE"},
	"Z511": {Code: "Z511", Name: "VENEZUELA", Province: "EE"},
	"Z600": {Code: "Z600", Name: "AUSTRALIA", Province: "EE"},
	"Z609": {Code: "Z609", Name: "NUOVA ZELANDA", Province: "EE"},
	"Z700": {Code: "Z700", Name: "CITTA' DEL VATICANO", Province: "EE"},
}
