package annotate

import (
	"fmt"
	"strings"
)

// The taxonomy definitions and worked examples below are the in-context
// instruction the classifier depends on. They are data, not code; edit
// them only together with the analysis rubric.

// noneValue replaces blank optional inputs in a prompt.
const noneValue = "なし"

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return noneValue
	}
	return s
}

const methodPromptTemplate = `以下の日本語原文と英訳を、一つの文化要素（キーワード）に焦点を当てて分析してください。

【日本語原文】
%[1]s

【英訳】
%[2]s

【キーワード（文化的要素）】
%[3]s

【注釈】
%[4]s

---

あなたの役割：
翻訳研究者として、指定されたキーワード（文化的要素）がどのように翻訳されているかを分析し、
以下の翻訳技法分類に基づいて分類してください。

分析手順（厳守）：

1. 翻訳技法を、以下の中から最も適切なものを1つだけ選択する。
【翻訳技法】
- Borrowing: 日本語の語句をそのまま音写（ローマ字化）して使用する。「英訳」にも「注釈」にも一切補足説明がない場合のみ適用する。
    - 例：「先生」-> "Sensei"

- Amplification: 「Borrowing（借用）」に加え、原文にない詳細（情報や説明的パラフレーズ）を加える。「注釈」に補足説明がある場合もAmplificationにあたる。

    - 例：「先生」-> "Sensei,〈詳細〉"、「先生」 -> "Sensei"+注釈でSenseiについての説明、「先生」など
    - 補足：この「詳細」には、訳文の脚注や注釈（%[4]s）に含まれる説明も含むこととする。

- Calque: 外国語の語句を逐語訳して取り入れる。語順は保たれる必要はない。

    - 例：「右大臣」-> "Minister of the Right" 語義的な Calque, 「森林浴」-> "forest bathing" 構造的な Calque

- Literal translation: 語句を逐語的に訳すが、形式・機能・意味が一致する場合に限る。辞書的な意味通り。

    - 例：「父」->"father"

- Established equivalent: 辞書や慣用表現として認められている等価語を使用する

    - 例：「酒」 -> "rice wine"、「畳」-> "Straw mat"

- Generalization: より一般的・中立的な用語を使用する。抽象化すること。

    - 例：「書生」 -> "student"

- Particularization: より具体的・精密な用語を使用する(文脈から具体名を特定する場合等)

    - 例：「花」-> "cherry blossoms"

- Description: 原文の言葉を使わずに用語をその形態や機能の説明に置き換える
    - 例：「こたつ」 -> "a heated table covered with a quilt"）

- Adaptation: 原文の文化的要素を、ターゲット文化の要素に置き換える

    - 例：「サッカー」->"baseball"、「将棋」-> "chess"

- Modulation: 視点や認知的カテゴリーを変更する。肯定・否定の反転や、受動・能動の切り替え、部分と全体の関係変更。

    - 例：「死ぬ」-> "stop living", 「父になる」-> "have a child"）

- Reduction: 原文の情報項目を省略する。原文にあった文化的要素が訳文に無くなる。

    - 例：「鳶色のカステラ」-> "cake"(「鳶色」という情報が消えている)

2. 100文字以内で、翻訳技法を選択した根拠を、必ず原文と訳文の具体例を引用しながら簡潔に述べる。
※ 文全体ではなく、必ず「キーワード（文化的要素）」の翻訳を中心に扱うこと。

回答形式（必ずこの1行形式）：
**文化的要素の対応訳,翻訳技法,翻訳技法の選出理由**

例：
Sensei,Borrowing,原文「先生」を「Sensei」と音写し、補足説明を加えていないため。
sake, a kind of Japanese rice wine,Amplification,原文「酒」を「sake」と借用しつつ「a kind of Japanese rice wine」と説明（増幅）を加えているため。
Minister of the Right,Calque,「右大臣」を「Minister of the Right」と語義的に逐語訳（仮借）しているため。
father,Literal translation,「父」を「father」と辞書的な意味の通りに直訳し、形式・機能・意味が一致しているため。
Straw mat,Established equivalent,「畳」を英語圏で定着している訳語「Straw mat」で対応させているため。
student,Generalization,「書生」という特定の身分の学生を、より一般的な用語である「student」に一般化しているため。
cherry blossoms,Particularization,「花」を、文脈上最も具体的な種である「cherry blossoms」に具体化しているため。
a heated table covered with a quilt,Description,「こたつ」という用語を使わず、その形態や機能（heated table covered with a quilt）を説明しているため。
chess,Adaptation,「将棋」という文化要素を、ターゲット文化圏で機能的に近い「chess」に置き換えているため。
stop living,Modulation,「死ぬ」という概念を、視点を変えて「stop living」という否定表現で訳しているため。
cake,Reduction,原文にあった「鳶色」に相当する色情報が訳文の「cake」では完全に省略されているため。

※ 必ず3項目をカンマ区切りで1行のみ出力する。
`

// MethodPrompt builds the translation-procedure classification prompt.
func MethodPrompt(in Input) string {
	return fmt.Sprintf(methodPromptTemplate,
		in.HighlightJP,
		in.HighlightEN,
		orNone(in.Note),
		orNone(in.Annotation),
	)
}

const dmisPromptTemplate = `以下の日本語原文と英訳を、一つの文化要素（キーワード）に焦点を当てて分析してください。

【日本語原文】
%[1]s

【英訳】
%[2]s

【キーワード（文化的要素）】
%[3]s

【注釈】
%[4]s

【文化的要素の対応訳】
%[5]s

---

あなたの役割：
異文化コミュニケーションおよび翻訳研究の専門家として、
「日本に関する知識が皆無の読者（Aさん）」が、翻訳テキストを通じて文化的要素をどの程度の深さで理解できる状態にあるかを、
客観的な第三者（統合の視点を持つ分析者）として判定してください。

分析手順（厳守）：

1. 文脈の確認：
   入力された【文化的要素の対応訳】だけでなく、必ず【英訳】全体の文脈を確認してください。
   特に、対応訳がどのように形容されているか（形容詞）、どう扱われているか（動詞）に注目してください。

2. 段階の判定：
   以下の【DMIS定義表】に基づき、翻訳テキストがAさんを強制的に置く認知段階を1つだけ特定してください。

【DMIS定義表（6段階モデル）】

| DMIS段階 | 判定基準（翻訳テキストの特性） | 読者（Aさん）の文化的要素に対する認知状態 |
| :--- | :--- | :--- |
| **Denial (否認)** | **【削除・不可視化】**<br>文化的要素が完全に削除・省略されている。または全く意味不明な訳語。 | **認識不可 / 無関心**<br>要素をノイズとして無視するしかない状態。 |
| **Defense (防衛)** | **【異化の強調・不全】**<br>不自然な直訳や過度な異国趣味により、「奇妙なもの」「不気味なもの」として提示されている。<br>（否定的な形容詞や文脈が含まれる場合もここ） | **拒絶 / 脅威**<br>「奇妙だ」「劣っている」と否定的に捉える状態。 |
| **Minimization (最小化)** | **【自文化への置き換え】**<br>自文化の既知の概念（等価物）に完全に置換している。<br>★重要：文化的要素の**固有性（違い）が消えている**場合はここ。 | **同化 / 普遍的理解**<br>「私の国と同じだ」と誤って処理し、固有性を意識しない状態。 |
| **Acceptance (受容)** | **【差異の提示】**<br>音写などでそのまま提示し、安易な置き換えを避けている。補足説明はほぼない。<br>★重要：**固有性（違い）が残っている**場合はここ。 | **差異の認識**<br>「私の国とは違う」と認識し、受け入れようとする状態。 |
| **Adaptation (適応)** | **【橋渡し・厚い記述】**<br>詳細な補足や背景説明（文中説明や訳注）を加え、機能や文脈を論理的・感情的に説明している。<br>（音写＋補足説明など） | **共感 / 文脈的理解**<br>「向こうではこう機能する」と一時的に視点を転換できる状態。 |
| **Integration (統合)** | **【比較・相対化の提示】**<br>自文化と異文化の価値観を対比させ、読者自身の常識やアイデンティティを問い直す記述がある。 | **相対化・再構築**<br>「私の常識も一つの偏りだ」とメタ的に自己内省する状態。 |

回答作成のルール：
- **文脈依存性：** 対応訳単体ではなく、文全体での扱われ方を根拠にすること。
- **最小化 vs 適応：** 固有性が消えていれば「最小化」、残っていれば「受容」以上とする。
- **適応 vs 統合：** 読者の価値観への問いかけがなければ「適応」に留めること。

回答形式（必ずこの1行形式）：
**DMIS段階,そのDMISであると考えられる理由**

出力例：
Denial,原文にあった色彩情報が訳文では完全に削除されており、読者はその要素の存在自体を認知できないため。
Defense,文脈なしに直訳しており、読者には意味不明な異物として奇妙に映り、理解を拒絶させる可能性があるため。
Minimization,「書生」を一般的な「student」に置き換えており、読者は固有性を意識せず自国の学生と同じものとして処理するため。
Acceptance,補足なく音写しており、読者に意味は不明確ながらも「自文化にはない固有の概念」として差異を認識させているため。
Adaptation,音写に加え「布団で覆われた暖房器具」という機能説明があり、読者はその形状と用途を具体的にイメージし共感できるため。
Integration,西洋の美意識と対比して説明しており、読者自身の「美」に対する固定観念を相対化させ、複合的な視点を与えているため。

※ 必ず2項目をカンマ区切りで1行のみ出力する。
`

// DMISPrompt builds the intercultural-sensitivity classification prompt.
// The prior translated term, when present in the dataset, anchors the
// judgement to the element the method pass already identified.
func DMISPrompt(in Input) string {
	return fmt.Sprintf(dmisPromptTemplate,
		in.HighlightJP,
		in.HighlightEN,
		orNone(in.Note),
		orNone(in.Annotation),
		orNone(in.PriorTerm),
	)
}

const combinedPromptTemplate = `以下の日本語原文と英訳を、一つの文化要素（キーワード）に焦点を当てて分析してください。

【日本語原文】
%[1]s

【英訳】
%[2]s

【キーワード（文化的要素）】
%[3]s

【注釈】
%[4]s

---

あなたの役割：
翻訳者本人は DMIS の**統合段階**にいるという前提で、
翻訳処理そのものは文化項目ごとに DMIS の任意の段階（否認〜統合）を意図的に**“演じて”選択する**、
という研究モデルで分析してください。DMISの分類は、**読者に与えたい文化差の「見え方」**に基づきます。

分析手順（厳守）：

1. 翻訳手法を、以下の中から最も適切なものを1つだけ選択する。
【翻訳手法】
1. Borrowing（借用）: 日本語の語句をそのまま音写（ローマ字化）して使用する。補足説明はない。
- 例：「先生」-> "Sensei"

2. Amplification（増幅）: 「Borrowing（借用）」に加え、原文にない詳細（情報や説明的パラフレーズ）を加える。
- 例：「先生」-> "Sensei,〈補足説明〉"

3. Calque（仮借）: 外国語の語句を逐語訳して取り入れる。語順は保たれる必要はない。
- 例：「右大臣」-> "Minister of the Right" 語義的なCalque, 「森林浴」-> "forest bathing" 構造的なCalque

4. Literal translation（直訳）: 語句を逐語的に訳すが、形式・機能・意味が一致する場合に限る。辞書的な意味通り。
- 例：「父」->"father"

5. Established equivalent（定着した等価）: 辞書や慣用表現として認められている等価語を使用する
- 例：「酒」 -> "rice wine"、「畳」-> "Straw mat"

6. Generalization（一般化）: より一般的・中立的な用語を使用する。抽象化すること。
- 例：「書生」 -> "student"

7. Particularization（具体化）: より具体的・精密な用語を使用する(文脈から具体名を特定する場合等)
- 例：「花」-> "cherry blossoms"

8. Description（記述）: 原文の言葉を使わずに用語をその形態や機能の説明に置き換える
（例：「こたつ」 -> "a heated table covered with a quilt"）

9.  Adaptation（適応）: 原文の文化的要素を、ターゲット文化の要素に置き換える
- 例：「サッカー」->"baseball"、「将棋」-> "chess"

10. Modulation（変調）: 視点や認知的カテゴリーを変更する。肯定・否定の反転や、受動・能動の切り替え、部分と全体の関係変更。
- 例：「死ぬ」-> "stop living", 「父になる」-> "have a child"）

11. Reduction（削減）: 原文の情報項目を省略する。原文にあった文化的要素が訳文に無くなる。
- 例：「鳶色のカステラ」-> "cake"(「鳶色」という情報が消えている)

2. キーワード（文化的要素）の扱いに基づき、翻訳者が意図的に“どの DMIS モード（否認〜統合）を採用したか”を1つ選択する。

【DMISの翻訳適用（翻訳者が“演じる”文化モード）】
 - 否認：**文化差が存在しない視点**。文化的要素やその機能・情報が**完全に削除**され、痕跡を残さない。
 - 防衛：**原文の文化要素を「異質で理解不能」なものとして扱い、ターゲット文化の強い概念に強制的に置き換える（過剰な同化）**
 - 最小化：**共通点に収束する視点**。差異を薄め、普遍的な意味や共通概念に置き換える（例：等価）。
 - 受容：**差異をそのまま残す視点**。文化差を認めたうえで保持する。読者に意識的な理解を要求する（例：借用・直訳）。
 - 適応：**他文化視点に切り替える視点**。文化差を認識し、ターゲット読者が**機能的に理解できる**別の等価な要素に置き換える（例：機能的翻案）。
 - 統合：**両文化を融合する視点**。機能的等価性を超え、要素の**象徴的・比喩的な意味を再構築**し、両文化の概念を柔軟に操作する（例：概念の昇華を伴う翻案・調整）。

2.5. **【DMIS選択のチェックポイント（再現性向上のため）】**
 以下の基準で最終確認を行う。
 - **否認**：文化的要素/機能が、訳文で完全に削除され、痕跡を残していないか？
 - **最小化**：訳語が、両文化に共通する最も一般的な上位概念に収束しているか？（直訳・等価・調整で多用）
 - **受容**：文化的固有性が維持され、読者にその差異の認識を求めているか？（借用・直訳で多用）
 - **適応**：訳語が、ターゲット読者が違和感なく**機能的役割**を理解できる等価物に置き換えられているか？（翻案・調整で多用）
 - **統合**：訳語が、単なる機能的等価性を超えて、**象徴的・比喩的な概念を再構築**しているか？

3. 100文字以内で、翻訳手法と DMIS モードを選択した根拠を、
必ず原文と訳文の具体例を引用しながら簡潔に述べる。
※ 文全体ではなく、必ず「キーワード（文化的要素）」の翻訳を中心に扱うこと。キーワードの補足情報として、要素の周りで補足されている場合もあるので状況に応じて周りも交えて述べる事。

回答形式（必ずこの1行形式）：
**Noteの英訳での対応語/対応句,翻訳手法,DMIS段階,備考**

例：
the sensei,借用,受容,原文「先生」を「the sensei」と借用し、日本語固有の敬称の文化的差異をそのまま提示し、読者にその受容を求めている。

※ 必ず4項目をカンマ区切りで1行のみ出力する。

入力と出力の例
入力: 【日本語原文】 私はその人を常に先生と呼んでいた。だから～～使う気にならない 【英訳】 I never called him anything else, so I will write about him here only as the sensei without mentioning his name... 【キーワード】 先生

出力: the sensei,Borrowing,受容,原文「先生」を「the sensei」と借用し、日本語特有の敬称をそのまま提示することで、読者に日本文化の敬意表現の受容を促している。

入力: 【日本語原文】 先生は白絣の上へ兵児帯を締めてから、眼鏡の失くなったのに気が付いたと見えて、急にそこいらを探し始めた。 【英訳】 It was not until he fastened hekoobi¹ around his shirogasuri yukata that he discovered his loss... 【キーワード】 白絣 【注釈】 2 A kind of cotten cloth.

出力: shirogasuri yukata,Amplification,適応,「白絣」を「shirogasuri」と借用しつつ「yukata」と注釈で補足（増幅）することで、読者が機能的に理解できるよう適応させている。

入力: 【日本語原文】 玉突きだのアイスクリームだのというハイカラなものには長い畷を一つ越さなければ手が届かなかった。 【英訳】 We could not reach such fashionable enjoyments as billiards or ice-cream without traversing a long lane between the rice-fields... 【キーワード】 畷

出力: a long lane between the rice-fields,Description,適応,「畷」という語を用いず「a long lane between the rice-fields」と形態・機能を記述し、読者が情景を機能的に理解できるよう適応している。

入力: 【日本語原文】 私は先生に手紙を書いて恩借の礼を述べた。正月上京する時に持参するからそれまで待ってくれるようにと断わった。 【英訳】 ...told him that would bring it back when I returned to Tokyo in January. 【キーワード】 正月

出力: January,Generalization,最小化,「正月」という文化行事を「January」という一般的な暦月に一般化し、文化的な差異を普遍的な時期の情報に収束（最小化）させている。

入力: 【日本語原文】 それで私は座敷へ上がって、先生を待つ間、奥さんと話をした。 【英訳】 So I had a talk with his wife while I waited in his drawing-room. 【キーワード】 座敷

出力: drawing-room,Adaptation,最小化,「座敷」を機能的に近い「drawing-room（応接間）」に置き換えることで、日本独自の住環境の差異を隠蔽し、ターゲット文化に馴染ませている（最小化）。

入力: 【日本語原文】 「私はお気の毒に思うのです」 【英訳】 ”I am sorry for you.” 【キーワード】 お気の毒

出力: sorry for you,Established equivalent,最小化,「お気の毒」を「sorry for you」という定着した等価表現で訳し、日本語特有の感情表現を普遍的な同情に収束させ、文化差を最小化している。

入力: 【日本語原文】 その時生垣の向うで金魚売りらしい声がした。 【英訳】 As he spoke, a voice which seemed to be a goldfish vendor's was heard from across the hedge. 【キーワード】 金魚売り

出力: goldfish vendor,Calque,適応,「金魚売り」を「goldfish vendor」と語義的に直訳（カルク）し、日本的な行商人の機能をターゲット読者が理解できるよう適応させている。

入力: 【日本語原文】 すぐその中からチョコレートを塗った鳶色のカステラを出して頰張った。 【英訳】 ...I at once attacked one decorated with chocolate. 【キーワード】 鳶色

出力: なし,Reduction,否認,訳文では「鳶色」に相当する色情報が完全に削除されており、文化差の存在を否認（無視）している。
`

// CombinedPrompt builds the single-pass prompt that labels both the
// translation procedure and the DMIS stage.
func CombinedPrompt(in Input) string {
	return fmt.Sprintf(combinedPromptTemplate,
		in.HighlightJP,
		in.HighlightEN,
		orNone(in.Note),
		orNone(in.Annotation),
	)
}
