package vocab

// Category names of the built-in vocabularies.
const (
	CategoryLicense            = "license"
	CategoryLanguage           = "language"
	CategoryPlatform           = "platform"
	CategoryRecommendedKeyword = "recommended-keyword"
	CategoryInterestingKeyword = "interesting-keyword"
	CategoryNonGameKeyword     = "non-game-keyword"
	CategoryMultiplayer        = "multiplayer"
	CategoryBuildSystem        = "build-system"
	CategoryCodeDependency     = "code-dependency"
)

// Placeholder values accepted by the license and language categories.
const (
	ValueNone    = "None"
	ValueUnknown = "?"
)

// MultiplayerSeparator joins several multiplayer modes in one value.
const MultiplayerSeparator = "+"

// MultiplayerKeyword starts the keyword naming the multiplayer modes of an
// entry, e.g. "multiplayer online + co-op".
const MultiplayerKeyword = "multiplayer"

// knownLicenses are the licenses accepted in entries.
var knownLicenses = []string{
	"2-clause BSD", "3-clause BSD", "4-clause BSD", "AFL-3.0", "AGPL-3.0", "Apache-2.0", "Artistic License-1.0", "Artistic License-2.0",
	"Boost-1.0", "CC-BY-NC-3.0", "CC-BY-NC-SA-2.0", "CC-BY-NC-SA-3.0", "CC-BY-SA-3.0", "CC-BY-NC-SA-4.0", "CC-BY-NC-ND-4.0",
	"CC-BY-SA-4.0", "CC0", "Custom", "EPL-2.0", "GPL-2.0", "GPL-3.0", "IJG", "ISC", "Java Research License", "LGPL-2.0",
	"LGPL-2.1", "LGPL-3.0", "MAME", "MIT", "MPL-1.1", "MPL-2.0", "MS-PL", "MS-RL", "NetHack General Public License",
	ValueNone, "NPOSL-3.0", "Proprietary", "Public domain", "SWIG license", "Unlicense", "WTFPL", "wxWindows license", "zlib", ValueUnknown,
}

// licensePrefixes resolve license families to a single reference page.
var licensePrefixes = PrefixMap{
	{"2-clause BSD", "https://en.wikipedia.org/wiki/BSD_licenses#2-clause_license_(%22Simplified_BSD_License%22_or_%22FreeBSD_License%22)"},
	{"3-clause BSD", "https://en.wikipedia.org/wiki/BSD_licenses#3-clause_license_(%22BSD_License_2.0%22,_%22Revised_BSD_License%22,_%22New_BSD_License%22,_or_%22Modified_BSD_License%22)"},
	{"4-clause BSD", "https://en.wikipedia.org/wiki/BSD_licenses#4-clause_license_(original_%22BSD_License%22)"},
	{"AFL", "https://en.wikipedia.org/wiki/Academic_Free_License"},
	{"AGPL", "https://en.wikipedia.org/wiki/GNU_Affero_General_Public_License"},
	{"Apache", "https://en.wikipedia.org/wiki/Apache_License"},
	{"Artistic License", "https://en.wikipedia.org/wiki/Artistic_License"},
	{"Boost", "https://en.wikipedia.org/wiki/Boost_(C%2B%2B_libraries)#License"},
	{"CC", "https://en.wikipedia.org/wiki/Creative_Commons_license"},
	{"EPL", "https://en.wikipedia.org/wiki/Eclipse_Public_License"},
	{"GPL", "https://en.wikipedia.org/wiki/GNU_General_Public_License"},
	{"IJG", "https://spdx.org/licenses/IJG.html"},
	{"ISC", "https://en.wikipedia.org/wiki/ISC_license"},
	{"Java Research License", "https://en.wikipedia.org/wiki/Java_Research_License"},
	{"LGPL", "https://en.wikipedia.org/wiki/GNU_Lesser_General_Public_License"},
	{"MAME", "https://docs.mamedev.org/license.html"},
	{"MIT", "https://en.wikipedia.org/wiki/MIT_License"},
	{"MPL", "https://en.wikipedia.org/wiki/Mozilla_Public_License"},
	{"MS", "https://en.wikipedia.org/wiki/Shared_Source_Initiative#Microsoft_Public_License_(Ms-PL)"},
	{"NetHack", "https://en.wikipedia.org/wiki/NetHack#Licensing,_ports,_and_derivative_ports"},
	{"Public domain", "https://en.wikipedia.org/wiki/Public_domain"},
	{"Unlicense", "https://en.wikipedia.org/wiki/Unlicense"},
	{"WTFPL", "https://en.wikipedia.org/wiki/WTFPL"},
	{"wxWindows", "https://en.wikipedia.org/wiki/WxWidgets#License"},
	{"zlib", "https://en.wikipedia.org/wiki/Zlib_License"},
}

// languageURLs are the known programming languages. Anything else produces
// a warning and is left out of statistics.
var languageURLs = map[string]string{
	"AGS Script":        "https://en.wikipedia.org/wiki/Adventure_Game_Studio",
	"ActionScript":      "https://en.wikipedia.org/wiki/ActionScript",
	"Ada":               "https://en.wikipedia.org/wiki/Ada_(programming_language)",
	"AngelScript":       "https://en.wikipedia.org/wiki/AngelScript",
	"Assembly":          "https://en.wikipedia.org/wiki/Assembly_language",
	"AWK":               "https://en.wikipedia.org/wiki/AWK",
	"Basic":             "https://en.wikipedia.org/wiki/BASIC",
	"Blender Script":    "https://en.wikipedia.org/wiki/Blender_(software)",
	"BlitzMax":          "https://en.wikipedia.org/wiki/Blitz_BASIC",
	"C":                 "https://en.wikipedia.org/wiki/C_(programming_language)",
	"C#":                "https://en.wikipedia.org/wiki/C_Sharp_(programming_language)",
	"C++":               "https://en.wikipedia.org/wiki/C%2B%2B",
	"Clojure":           "https://en.wikipedia.org/wiki/Clojure",
	"CoffeeScript":      "https://en.wikipedia.org/wiki/CoffeeScript",
	"ColdFusion":        "https://en.wikipedia.org/wiki/ColdFusion_Markup_Language",
	"D":                 "https://en.wikipedia.org/wiki/D_(programming_language)",
	"DM":                "http://www.byond.com/docs/guide/",
	"Dart":              "https://en.wikipedia.org/wiki/Dart_(programming_language)",
	"Elm":               "https://en.wikipedia.org/wiki/Elm_(programming_language)",
	"Emacs Lisp":        "https://en.wikipedia.org/wiki/Emacs_Lisp",
	"F#":                "https://en.wikipedia.org/wiki/F_Sharp_(programming_language)",
	"GDScript":          "https://en.wikipedia.org/wiki/Godot_(game_engine)#Scripting",
	"Game Maker Script": "https://en.wikipedia.org/wiki/GameMaker#GameMaker_Language",
	"Go":                "https://en.wikipedia.org/wiki/Go_(programming_language)",
	"Groovy":            "https://en.wikipedia.org/wiki/Apache_Groovy",
	"Haskell":           "https://en.wikipedia.org/wiki/Haskell_(programming_language)",
	"Haxe":              "https://en.wikipedia.org/wiki/Haxe",
	"Io":                "https://en.wikipedia.org/wiki/Io_(programming_language)",
	"Java":              "https://en.wikipedia.org/wiki/Java_(programming_language)",
	"JavaScript":        "https://en.wikipedia.org/wiki/JavaScript",
	"Kotlin":            "https://en.wikipedia.org/wiki/Kotlin_(programming_language)",
	"Lisp":              "https://en.wikipedia.org/wiki/Lisp_(programming_language)",
	"Lua":               "https://en.wikipedia.org/wiki/Lua_(programming_language)",
	"MoonScript":        "https://moonscript.org/",
	"OCaml":             "https://en.wikipedia.org/wiki/OCaml",
	"Objective-C":       "https://en.wikipedia.org/wiki/Objective-C",
	"ooc":               "https://ooc-lang.org/",
	"PHP":               "https://en.wikipedia.org/wiki/PHP",
	"Pascal":            "https://en.wikipedia.org/wiki/Pascal_(programming_language)",
	"Perl":              "https://en.wikipedia.org/wiki/Perl",
	"Python":            "https://en.wikipedia.org/wiki/Python_(programming_language)",
	"QuakeC":            "https://en.wikipedia.org/wiki/QuakeC",
	"Ren'Py":            "https://en.wikipedia.org/wiki/Ren%27Py",
	"Ruby":              "https://en.wikipedia.org/wiki/Ruby_(programming_language)",
	"Rust":              "https://en.wikipedia.org/wiki/Rust_(programming_language)",
	"Scala":             "https://en.wikipedia.org/wiki/Scala_(programming_language)",
	"Scheme":            "https://en.wikipedia.org/wiki/Scheme_(programming_language)",
	"Script":            "https://en.wikipedia.org/wiki/Scripting_language", // script and shell dialects not listed separately
	"Swift":             "https://en.wikipedia.org/wiki/Swift_(programming_language)",
	"TorqueScript":      "https://en.wikipedia.org/wiki/Torque_(game_engine)",
	"TypeScript":        "https://en.wikipedia.org/wiki/TypeScript",
	"Vala":              "https://en.wikipedia.org/wiki/Vala_(programming_language)",
	"Visual Basic":      "https://en.wikipedia.org/wiki/Visual_Basic",
	"XUL":               "https://en.wikipedia.org/wiki/XUL",
	"ZenScript":         "https://github.com/CraftTweaker/ZenScript",
}

// validPlatforms must also be given in this order inside an entry.
var validPlatforms = []string{"Windows", "Linux", "macOS", "Android", "iOS", "Web"}

// recommendedKeywords give the principal categories and their order. Every
// entry needs at least one of them.
var recommendedKeywords = []string{
	"action", "arcade", "adventure", "visual novel", "sports", "platform", "puzzle", "role playing", "simulation",
	"strategy", "cards", "board", "music", "educational", "tool", "game engine", "framework", "library", "remake",
}

// extraInterestingKeywords are popular keywords shown alongside the
// recommended ones.
var extraInterestingKeywords = []string{
	"2D", "3D", "clone", "first-person", "real-time", "roguelike", "shooter", "space", "turn-based", "for kids", "for adults",
}

// nonGameKeywords take precedence over the other recommended keywords. An
// entry may carry at most one of them.
var nonGameKeywords = []string{"framework", "game engine", "library", "tool"}

var multiplayerModes = []string{
	"competitive", "co-op", "hotseat", "LAN", "local", "massive", "matchmaking", "online", "split-screen",
}

var buildSystemURLs = PrefixMap{
	{"CMake", "https://cmake.org/"},
	{"Make", "https://en.wikipedia.org/wiki/Make_(software)"},
	{"Autoconf", "https://en.wikipedia.org/wiki/Autoconf"},
	{"Gradle", "https://gradle.org/"},
	{"Visual Studio", "https://en.wikipedia.org/wiki/Microsoft_Visual_Studio"},
	{"setup.py", "https://packaging.python.org/tutorials/packaging-projects/#configuring-metadata"},
	{"Scons", "https://scons.org/"},
	{"Ant", "http://ant.apache.org/"},
	{"Maven", "https://maven.apache.org/index.html"},
	{"Meson", "https://mesonbuild.com/"},
	{"premake", "https://premake.github.io/"},
	{"QMake", "https://doc.qt.io/qt-5/qmake-manual.html"},
}

// generalCodeDependencies are dependencies without their own entry because
// they are not centered on gaming.
var generalCodeDependencies = PrefixMap{
	{"OpenGL", "https://www.opengl.org/"},
	{"GLUT", "https://www.opengl.org/resources/libraries/"},
	{"WebGL", "https://www.khronos.org/webgl/"},
	{"Unity", "https://unity.com/solutions/game"},
	{".NET", "https://dotnet.microsoft.com/"},
	{"Vulkan", "https://www.khronos.org/vulkan/"},
	{"KDE Frameworks", "https://kde.org/products/frameworks/"},
	{"jQuery", "https://jquery.com/"},
	{"node.js", "https://nodejs.org/en/"},
	{"GNU Guile", "https://www.gnu.org/software/guile/"},
	{"tkinter", "https://docs.python.org/3/library/tk.html"},
	{"Boost", "https://www.boost.org/"},
}

// ignoredCodeDependencies are too abundant and too general to list and
// should be removed where they occur.
var ignoredCodeDependencies = []string{
	"OpenAL", "libcurl", "libfreetype", "libogg", "libpng", "libvorbis", "libxml", "zlib",
}

// codeDependencyAliases maps entry names to the abbreviations used when
// they are given as code dependencies.
var codeDependencyAliases = []struct {
	Entry   string
	Aliases []string
}{
	{"Simple DirectMedia Layer", []string{"SDL", "SDL2"}},
	{"Simple and Fast Multimedia Library", []string{"SFML"}},
	{"Boost (C++ Libraries)", []string{"Boost"}},
	{"SGE Game Engine", []string{"SGE"}},
	{"MegaGlest", []string{"MegaGlest Engine"}},
}
