package yake

import "strings"

// stopwordLists holds the embedded stopword lists, keyed by ISO 639-1 code.
// Every language langdetect can resolve to has an entry.
var stopwordLists = map[string]string{
	"en": `a about above across after afterwards again against all almost alone along
already also although always am among amongst amount an and another any anyhow
anyone anything anyway anywhere are aren't around as at back be became because
become becomes becoming been before beforehand behind being below beside besides
between beyond both but by can can't cannot could couldn't did didn't do does
doesn't doing don't done down during each either else elsewhere enough entirely
especially etc even ever every everyone everything everywhere few for former
formerly from further had hadn't has hasn't have haven't having he he'd he'll
he's hence her here hereafter hereby herein here's hereupon hers herself him
himself his how however i i'd i'll i'm i've if in indeed into is isn't it it's
its itself just keep last latter latterly least less let let's like likely made
make many may maybe me meanwhile might mine more moreover most mostly much must
mustn't my myself neither never nevertheless next no nobody none noone nor not
nothing now nowhere of off often on once one only onto or other others otherwise
our ours ourselves out over own part per perhaps please put rather re same see
seem seemed seeming seems several she she'd she'll she's should shouldn't since
so some somehow someone something sometime sometimes somewhere still such take
than that that's the their theirs them themselves then thence there thereafter
thereby therefore therein there's thereupon these they they'd they'll they're
they've this those through throughout thru thus to together too toward towards
under until up upon us use very via was wasn't we we'd we'll we're we've well
were weren't what whatever what's when whence whenever where whereafter whereas
whereby wherein where's whereupon wherever whether which while whither who who'd
whoever who'll who's whose why will with within without won't would wouldn't yet
you you'd you'll you're you've your yours yourself yourselves ain't it'll shan't
that'll when's`,
	"de": `aber alle allem allen aller alles als also am an ander andere anderem anderen
anderer anderes auch auf aus bei bin bis bist da damit dann das dass dem den denn
der des dich die dies diese diesem diesen dieser dieses dir doch dort du durch ein
eine einem einen einer eines er es etwas euch euer für hab habe haben hat hatte
hier hin hinter ich ihm ihn ihnen ihr ihre im in indem ins ist jede jedem jeden
jeder jedes jetzt kann kein keine können man mein meine mich mir mit muss nach
nicht nichts noch nun nur ob oder ohne sehr sein seine sich sie sind so solche
soll sondern um und uns unser unter viel vom von vor war waren was weil welche
wenn wer werden wie wieder wir wird wo zu zum zur über`,
	"es": `a al algo algunas algunos ante antes como con contra cual cuando de del desde
donde durante e el ella ellas ellos en entre era eran es esa esas ese eso esos esta
estaba estado estas este esto estos fue fueron ha hace hay la las le les lo los
más me mi mis mucho muy ni no nos nosotros o otra otras otro otros para pero poco
por porque que quien se sea ser si sin sobre son su sus también tanto te tiene
todo todos tu tus un una uno unos y ya yo él`,
	"fr": `a ai au aux avec ce ces cette comme dans de des du elle elles en est et eux il
ils je la le les leur leurs lui ma mais me mes moi mon même ne nos notre nous on ou
où par pas pour qu que qui sa sans se ses si son sont sur ta te tes toi ton tu un
une vos votre vous été être était avoir fait plus tout tous très`,
	"it": `a ad al alla alle allo anche che chi ci come con da dal dalla dei del della
delle di dove e ed gli ha hanno i il in io la le lei lo loro lui ma mi mia mio ne
nel nella noi non o per perché più quale quando questa questo se si sono su sua suo
sul sulla tra tu un una uno vi voi è`,
	"pt": `a ao aos as até com como da das de dela dele do dos e ela elas ele eles em
entre era essa esse esta este eu foi for isso isto já lhe mais mas me mesmo meu
minha muito na nas no nos nossa nosso não o os ou para pela pelo por qual quando
que quem se sem ser seu sua são também te tem um uma você à é`,
	"nl": `aan al als bij dan dat de der deze die dit door een en er haar heb heeft het
hij hoe hun ik in is je kan maar me met mij na naar niet nog nu of om ons ook op
over te tot u uit van voor was wat we wel wie wij zal ze zich zij zijn zo`,
	"ar": `في من على إلى عن مع هذا هذه ذلك تلك التي الذي الذين هو هي هم هن أنا نحن أنت
كان كانت يكون تكون قد لقد لم لن لا ما ماذا إن أن إذا أو ثم بل حتى كل بعض غير بين
عند عندما قبل بعد فوق تحت حيث كما لكن منذ وقد وفي ومن وهو وهي وكان وأن أي أيضا هناك
هنا به بها له لها لهم فيه فيها منه منها عليه عليها`,
	"bg": `а аз ако ала бе без беше би бил била били било близо бъдат бъде бяха в вас ваш
ваша вече ви вие все всеки всички всичко във все още въпреки го да дали до докато
е едва един една еднакво едни ето за зад заедно защо защото и из или им има имат
как като която които който кой коя което къде към ли между ме между мен ми много
може му на над най нас наш наша не него нея ни ние но нещо нея нито от отново по
под после при с са само се сега си след сме със също та тази така такива такъв
там те тези ти то това тогава този той толкова тук тя тях у че чрез ще я`,
	"cs": `a aby aj ale ani aniž ano asi až bez bude budou by byl byla byli bylo být co
což či další do ho i jak jako je jeho jej její jejich jen jenž ještě ji jiné již
jsem jsi jsme jsou jste k kam kde kdo kdy když ke která které kterou který kteří
má mají mezi mi mít mně mnou můj může na nad nám nás ne nebo nejsou není než nic
o od ode on ona oni ono pak po pod podle pokud pouze právě pro proto protože před
při s se si sice své svůj ta tak také takže tam tato té tedy ten tento této tím
to tohle toho tom tomto tu tuto ty u už v vám vás ve vy z za zde ze že`,
	"da": `ad af alle alt anden at blev blive bliver da de dem den denne der deres det
dette dig din dog du efter eller en end er et for fra ham han hans har havde have
hende hendes her hos hun hvad hvis hvor i ikke ind jeg jer jo kunne man mange med
meget men mig min mine mit mod ned noget nogle nu når og også om op os over på
selv sig sin sine sit skal skulle som sådan thi til ud under var vi vil ville vor
være været`,
	"el": `αλλά αν από αυτά αυτές αυτή αυτό αυτοί αυτός αυτών για δε δεν εάν εγώ εδώ
είναι εκεί ενώ εσύ η θα κάθε και κατά μας με μετά μη μην μια μόνο να ο οι όμως
όπως όταν ότι πολύ που πριν προς πως σας σε στα στη στην στις στο στον στους
στων σου τα τη την της τι τις το τον τους του των ως ένα ένας έχει έχουν ήταν`,
	"fa": `از به با در برای که این آن را و یا تا هم نیز اما اگر چه چون هر همه هیچ
است بود شد شود باشد کرد کند کردن می نمی ها های ای یک دو ما شما او آنها ایشان
من تو خود بر بی پس پیش روی زیر بین نه ولی دیگر همین همان آنچه چنین وی`,
	"fi": `ei eivät emme en et ette että he heidän hän hänen ja jo joka jotka jos kanssa
kuin kuka kun me meidän minä minun mitä mukaan mutta myös ne niiden niin nyt oli
olivat olla on ovat pitää se sekä sen siitä sillä sinä sinun siis tai te teidän
tämä tämän tässä tuo vaan vai voi ja joten koska ennen jälkeen sitten`,
	"hr": `a ako ali bi bih bila bili bilo biti bez da do dok duž ga i iako ili iz ja je
jer jesu još ju k kad kada kako koja koje koji kojima kao ko li me mene meni mi
mu na nad nakon ne nego neka nešto ni nije nisu njega njegov njemu njih njihov
o od oko on ona oni ono pa po pod pored pri prije s sa samo se sebe si sve svi
svoj svoje ta tada taj te ti to toga tu u uz va vam vas već vi za zar zbog že`,
	"hu": `a az ahogy ahol aki akik akkor alatt amely amelyek amelyet ami amit amíg
annak arra azt azok azon azonban bár be benne csak de e egy egyes egyik egész el
ekkor el elég ellen én és ez ezek ezen ezt fel hanem hiszen hogy hogyan igen így
ill is ismét itt jó kell kellett keresztül ki kívül között le legyen lehet lenne
lett meg mellett mert mi míg mint mind minden mindig mit mivel most nagy nem nincs
nyolc olyan ott össze pedig s saját sem semmi sok számára szerint szinte talán
tehát teljes továbbá tovább úgy új után utána vagy vagyis valaki valami van vannak
volt voltak volna`,
	"ja": `の に は を た が で て と し れ さ ある いる も する から な こと として い や
れる など なっ ない この ため その あっ よう また もの という あり まで られ なる へ
か だ これ によって により おり より による ず なり られる において ば なかっ なく
しかし について せ だっ その後 できる それ う ので なお のみ でき き つ における
および いう さらに でも ら たり その他 に関する たち ます ん なら です`,
	"ko": `이 그 저 것 수 등 들 및 에 의 가 을 를 은 는 로 으로 와 과 도 에서 에게 한
하다 있다 되다 하고 하는 있는 있고 그리고 그러나 하지만 또는 또한 때 더 또 좀 잘
것이 것은 것을 우리 저희 나 너 그녀 그들 이것 그것 저것 여기 거기 어디 무엇 왜
어떻게 위해 대한 통해 같은`,
	"no": `alle at av bare begge ble blei bli blir blitt både da dei deim deira deires
dem den denne der dere deres det dette di din disse ditt du dykk dykkar då eg ein
eit eitt eller elles en enn er et ett etter for fordi fra før ha hadde han hans
har hennar henne hennes her hjå ho hoe honom hoss hossen hun hva hvem hver hvilke
hvilken hvis hvor hvordan hvorfor i ikke ikkje ingen ingi inkje inn inni ja jeg
kan kom korleis korso kun kunne kva kvar kvarhelst kven kvi kvifor man mange me
med medan meg meget mellom men mi min mine mitt mot mykje ned no noe noen noka
noko nokon nokor nokre nå når og også om opp oss over på samme seg selv si sia
sidan siden sin sine sitt sjøl skal skulle slik so som somme somt så sånn til um
upp ut uten var vart varte ved vere verte vi vil ville vore vors vort være vært`,
	"pl": `a aby ach acz aczkolwiek aj albo ale ależ ani aż bardziej bardzo bo bowiem by
byli bym był była było były być będzie będą cali cała cały ci cię ciebie co cokolwiek
coś czasami czasem czemu czy czyli daleko dla dlaczego dlatego do dobrze dokąd dość
dużo dwa dwaj dwie dwoje dziś dzisiaj gdy gdyby gdyż gdzie gdziekolwiek gdzieś go
i ich ile im inna inne inny innych iż ja jak jakaś jakby jaki jakichś jakie jakiś
jakiż jakkolwiek jako jakoś je jeden jedna jedno jednak jednakże jego jej jemu jest
jestem jeszcze jeśli jeżeli już ją każdy kiedy kilka kimś kto ktokolwiek ktoś która
które którego której który których którym którzy ku lat lecz lub ma mają mam mi
mimo między mną mnie mogą moi moim moja moje może możliwe można mój mu musi my na
nad nam nami nas nasi nasz nasza nasze naszego naszych natomiast natychmiast nawet
nic nich nie niego niej niemu nigdy nim nimi niż no o obok od około on ona one oni
ono oraz oto owszem pan pana pani po pod podczas pomimo ponad ponieważ powinien
powinna powinni powinno poza prawie przecież przed przede przedtem przez przy
roku również sam sama się skąd sobie sobą sposób swoje są ta tak taka taki takie
także tam te tego tej temu ten teraz też to tobie tobą toteż trzeba tu tutaj twoi
twoim twoja twoje twym twój ty tych tylko tym u w wam wami was wasz wasza wasze we
według wiele wielu więc więcej wszyscy wszystkich wszystkie wszystkim wszystko
wtedy wy właśnie z za zapewne zawsze ze zł znowu znów został żaden żadna żadne
żadnych że żeby`,
	"ro": `a acea aceasta această aceea acei aceia acel acela acele acelea acest acesta
aceste acestea acestei acestia acestui aceşti aceştia acolo acum ai aia aibă aici
al ale alea alt alta altceva altcineva am ar are asta astfel asupra au avea avem
aveţi azi aş aşadar aţi bine ca care cat ce cea cei ceilalţi cel cele celor ceva
chiar cine cum cumva când către da dacă dar dat datorită de deci deja deoarece
despre din dintr dintre doar după ea ei el ele era este eu fi fie fiecare fost
fără iar ii il in intre iar la le li lor lui mai mult multe nu ne noi nostru
nouă o ori pe pentru poate prin sa sau se si spre sub sunt să şi ţi tot toate
toţi un una unde unei unor unui vă voi vor`,
	"ru": `а без более бы был была были было быть в вам вас весь во вот все всего всех
вы где да даже для до его ее ей ему если есть еще же за здесь и из или им их к как
ко когда кто ли либо мне может мы на надо наш не него нее нет ни них но ну о об
однако он она они оно от очень по под при с со так также такой там те тем то того
тоже той только том ты у уже хотя чего чей чем что чтобы чье чья эта эти это этот
этого этой этом я будет будут был бывает всё ещё который которая которые которых
можно нам нас нужно пока потом потому почему раз себя свой своей свои своих сейчас
тут тогда уж через`,
	"sk": `a aby aj ak ako ale alebo ani áno až bez bol bola boli bolo by byť cez či čo
do ešte ho i ich ja jeho jej je jemu ju k kam kde kedy keď ktorá ktoré ktorý ktorí
ku lebo len ma mal mala mali mať medzi mi mňa mne môj môže my na nad nám nás ne
nech nie niečo nič no o od on ona oni ono po pod podľa pre pred pri s sa si sme so
som sú ste svoj ta tak takže tam tento teda ten to toho tom tu túto ty tých už v
vám vás vo všetko vy z za zo že`,
	"sl": `a ali bi bil bila bile bili bilo biti blizu bo bodo bolj brez da do dokler
dol ga je jih jo kaj kadar kako kar kateri katera katere kdaj kdo ker ki kje
kjer le lahko malo med mi mu na nad naj nas ne nekaj ni nih nikoli niso no o ob
od on ona oni ono pa po pod pred pri s sam samo se si smo so sta ste še ta tako
tam te tega tem ti tisti to tudi tukaj v vas ve vendar vsa vse vsi z za že`,
	"sv": `alla allt att av blev bli blir blivit de dem den denna deras dess dessa det
detta dig din dina ditt du där då efter ej eller en er era ert ett från för ha
hade han hans har henne hennes hon honom hur här i icke ingen inom inte jag ju
kan kunde man med mellan men mig min mina mitt mot mycket ni nu när någon något
några och om oss på samma sedan sig sin sina sitta själv skulle som så sådan
sådana sådant till under upp ut utan vad var vara varför varit varje vars vart
vem vi vid vilka vilkas vilken vilket vår våra vårt än är åt över`,
	"tr": `acaba ama aslında az bazı belki biri birkaç birşey biz bu çok çünkü da daha
de defa diye eğer en gibi hem hep hepsi her hiç için ile ise kez ki kim mı mu mü
nasıl ne neden nerde nerede nereye niçin niye o sanki şey siz şu tüm ve veya ya
yani bir olan olarak olduğu olduğunu kadar sonra önce göre ancak artık bile bunu
bunun buna onun ona onlar ben sen benim senin değil var yok`,
	"zh": `的 了 和 是 在 我 有 他 这 中 大 来 上 个 们 到 说 就 你 也 着 那 要 会 对 于
而 与 及 或 但 被 把 让 给 从 向 以 之 其 此 所 为 等 都 很 还 又 并 不 没 吗 呢 吧
啊 它 她 这个 那个 我们 你们 他们 她们 它们 因为 所以 如果 虽然 但是 然后 可以
已经 就是 这样 那样 什么 怎么 为什么`,
}

var stopwordSets = func() map[string]map[string]struct{} {
	sets := make(map[string]map[string]struct{}, len(stopwordLists))
	for lang, list := range stopwordLists {
		words := strings.Fields(list)
		set := make(map[string]struct{}, len(words))
		for _, w := range words {
			set[w] = struct{}{}
		}
		sets[lang] = set
	}
	return sets
}()

// stopwordsFor returns the stopword set for language, or an empty set.
func stopwordsFor(language string) map[string]struct{} {
	if set, ok := stopwordSets[language]; ok {
		return set
	}
	return map[string]struct{}{}
}
